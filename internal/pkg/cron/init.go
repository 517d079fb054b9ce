package cron

import log "log/slog"

// InitCron 注册计数对账任务并启动调度引擎
func InitCron(mgr *Manager) error {
	if err := mgr.RegisterJobs(); err != nil {
		return err
	}
	mgr.Start()
	log.Info("定时任务已就绪", "jobs", []string{"counter_reconcile"})
	return nil
}
