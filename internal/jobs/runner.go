package jobs

import (
	"sync"

	mapset "github.com/deckarep/golang-set/v2"
	cron "github.com/robfig/cron"
	"github.com/sirupsen/logrus"
)

type Job interface {
	Run()
}

type CronJob interface {
	Schedule() string
	Job
}

// TaskExecutor runs cron jobs on their schedule and plain jobs every second.
// A job is skipped while its previous run is still going.
type TaskExecutor struct {
	cron            *cron.Cron
	jobs            []Job
	cronJobs        []CronJob
	runningJobs     mapset.Set[Job]
	runningCronJobs mapset.Set[CronJob]
	muJobs          sync.Mutex
	muCronJobs      sync.Mutex
}

func NewTaskExecutor(jobs []Job, cronJobs []CronJob) *TaskExecutor {
	return &TaskExecutor{
		cron:            cron.New(),
		jobs:            jobs,
		cronJobs:        cronJobs,
		runningCronJobs: mapset.NewThreadUnsafeSet[CronJob](),
		runningJobs:     mapset.NewThreadUnsafeSet[Job](),
	}
}

// Run schedules every job and starts the cron in its own goroutine.
func (t *TaskExecutor) Run() error {
	for _, job := range t.cronJobs {
		if err := t.cron.AddFunc(job.Schedule(), guard(&t.muCronJobs, t.runningCronJobs, job)); err != nil {
			logrus.Errorf("failed to add task to cron: %v", err)
			return err
		}
	}

	for _, job := range t.jobs {
		if err := t.cron.AddFunc("@every 1s", guard(&t.muJobs, t.runningJobs, job)); err != nil {
			logrus.Errorf("failed to add task to cron: %v", err)
			return err
		}
	}

	t.cron.Start()

	return nil
}

func (t *TaskExecutor) Stop() {
	logrus.Infof("stopping all tasks")
	t.cron.Stop()
}

func guard[J interface {
	comparable
	Job
}](mu *sync.Mutex, running mapset.Set[J], job J) func() {
	return func() {
		mu.Lock()
		if running.ContainsOne(job) {
			mu.Unlock()
			logrus.Warn("task is already running")
			return
		}
		running.Add(job)
		mu.Unlock()

		defer func() {
			mu.Lock()
			defer mu.Unlock()
			running.Remove(job)
		}()

		job.Run()
	}
}
