package task

// Job 是后台任务的统一接口，与 cron.Job 兼容，
// 额外要求一个可读名称用于日志。
type Job interface {
	Run()
	Name() string
}
