/*
 * @Description: cron 任务的日志与 panic 恢复装饰器
 * @Author: 安知鱼
 * @Date: 2025-09-03 17:22:40
 * @LastEditTime: 2025-09-03 17:22:40
 * @LastEditors: 安知鱼
 */
package task

import (
	"log/slog"
	"reflect"
	"runtime/debug"
	"time"

	"github.com/google/uuid"
	"github.com/robfig/cron/v3"
)

// JobWrapper 是 cron.JobWrapper 的类型别名。
type JobWrapper = cron.JobWrapper

// NewLoggingWrapper 创建日志装饰器：记录每次执行的开始、结束和耗时，
// 并附带唯一执行 ID 便于检索。
func NewLoggingWrapper(logger *slog.Logger) JobWrapper {
	return func(j cron.Job) cron.Job {
		return cron.FuncJob(func() {
			jobLogger := logger.With(
				slog.String("job_name", getJobName(j)),
				slog.String("execution_id", uuid.New().String()),
			)

			startTime := time.Now()
			jobLogger.Info("Job execution started")

			j.Run()

			jobLogger.Info("Job execution finished", slog.Duration("duration", time.Since(startTime)))
		})
	}
}

// NewPanicRecoveryWrapper 创建 panic 恢复装饰器：
// 任务 panic 时记录堆栈，不让进程跟着崩。
func NewPanicRecoveryWrapper(logger *slog.Logger) JobWrapper {
	return func(j cron.Job) cron.Job {
		return cron.FuncJob(func() {
			defer func() {
				if r := recover(); r != nil {
					logger.Error("Job panicked",
						slog.String("job_name", getJobName(j)),
						slog.Any("panic", r),
						slog.String("stack_trace", string(debug.Stack())),
					)
				}
			}()

			j.Run()
		})
	}
}

// getJobName 优先使用任务自带的 Name()，否则反射取类型名。
func getJobName(j cron.Job) string {
	if namedJob, ok := j.(interface{ Name() string }); ok {
		return namedJob.Name()
	}

	jobType := reflect.TypeOf(j)
	if jobType.Kind() == reflect.Ptr {
		return jobType.Elem().String()
	}
	return jobType.String()
}
