package task

import (
	"context"
	"log"
	"time"

	"github.com/robfig/cron/v3"

	"store_mgmt_v1_202510/internal/repository"
)

// ==================== StockMonitorTask 低库存巡检 ====================

// StockMonitorTask 周期扫描库存，低于阈值的商品记告警日志
type StockMonitorTask struct {
	inventoryRepo repository.InventoryRepository
	cron          *cron.Cron
	spec          string
	threshold     int32
}

// NewStockMonitorTask 创建低库存巡检任务
// spec: 带秒的 cron 表达式，例如 "0 0 * * * *"（每小时）
func NewStockMonitorTask(inventoryRepo repository.InventoryRepository, spec string, threshold int32) *StockMonitorTask {
	return &StockMonitorTask{
		inventoryRepo: inventoryRepo,
		cron:          cron.New(cron.WithSeconds()),
		spec:          spec,
		threshold:     threshold,
	}
}

// Start 启动定时巡检
func (t *StockMonitorTask) Start() error {
	_, err := t.cron.AddFunc(t.spec, func() {
		t.runOnce()
	})
	if err != nil {
		return err
	}
	t.cron.Start()
	log.Printf("低库存巡检已启动，周期 %s，阈值 %d", t.spec, t.threshold)
	return nil
}

// Stop 停止巡检，等当前一轮跑完
func (t *StockMonitorTask) Stop() {
	ctx := t.cron.Stop()
	<-ctx.Done()
}

func (t *StockMonitorTask) runOnce() {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	rows, err := t.inventoryRepo.ListBelow(ctx, t.threshold)
	if err != nil {
		log.Printf("低库存巡检失败: %v", err)
		return
	}
	if len(rows) == 0 {
		return
	}

	log.Printf("低库存告警: %d 个商品低于阈值 %d", len(rows), t.threshold)
	for _, r := range rows {
		log.Printf("  [低库存] 商品 %d (%s) 仅剩 %d", r.ProductID, r.ProductName, r.Quantity)
	}
}
