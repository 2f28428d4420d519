package services

import (
	"Shelved/internal/config"
	"Shelved/internal/repository"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/sirupsen/logrus"
)

// Janitor purges files whose expires_at has passed. It runs on the configured
// cron schedule and can be forced through the admin route.
type Janitor struct {
	fileRepo      repository.FileRepository
	trashService  TrashService
	configuration *config.Configuration
	logService    LogService
	cleaning      bool
	mutex         sync.Mutex
	cron          *cron.Cron
}

func NewJanitorService(
	fileRepo repository.FileRepository,
	trashService TrashService,
	logService LogService,
	configuration *config.Configuration,
) *Janitor {
	return &Janitor{
		fileRepo:      fileRepo,
		trashService:  trashService,
		logService:    logService,
		cleaning:      false,
		mutex:         sync.Mutex{},
		configuration: configuration,
		cron:          cron.New(),
	}
}

func (j *Janitor) ForceStartCleanCycle() error {
	j.mutex.Lock()
	if j.cleaning {
		j.mutex.Unlock()
		return errors.New("cleaning is in progress")
	}
	j.cleaning = true
	j.mutex.Unlock()

	go func() {
		defer func() {
			j.mutex.Lock()
			j.cleaning = false
			j.mutex.Unlock()
		}()
		j.startClean(true)
	}()

	return nil
}

func (j *Janitor) StartCleanCycle() {
	j.logService.Log.Debug("starting cleaning job")

	cronSchedule := j.configuration.Server.CleanConfig.Schedule
	_, err := j.cron.AddFunc(cronSchedule, func() {
		j.mutex.Lock()
		if j.cleaning {
			j.mutex.Unlock()
			return
		}
		j.cleaning = true
		j.mutex.Unlock()

		defer func() {
			j.mutex.Lock()
			j.cleaning = false
			j.mutex.Unlock()
		}()
		j.startClean(false)
	})

	if err != nil {
		j.logService.Log.WithFields(logrus.Fields{
			"job":   "clean",
			"error": err.Error(),
		}).Error("Failed to start cleaning job")
	}
	j.cron.Start()
}

func (j *Janitor) StopClean() {
	j.mutex.Lock()
	defer j.mutex.Unlock()

	j.cron.Stop()
	j.cleaning = false
	j.logService.Log.WithFields(logrus.Fields{
		"job":    "clean",
		"status": "stopped",
	}).Info("Janitor clean stopped")
}

func (j *Janitor) IsCleaning() bool {
	j.mutex.Lock()
	defer j.mutex.Unlock()
	return j.cleaning
}

func (j *Janitor) startClean(forced bool) {
	j.logService.Log.Debug("getting expired files")
	files, err := j.fileRepo.ListExpired(time.Now())
	if err != nil {
		j.logService.Log.WithFields(logrus.Fields{
			"job":    "clean",
			"status": "error",
			"error":  err.Error(),
		}).Error("Failed to find expired files")
		return
	}
	j.logService.Log.Debug(fmt.Sprintf("found %d files", len(files)))

	if len(files) > 0 {
		var logFields logrus.Fields
		if !forced {
			logFields = logrus.Fields{
				"job":    "clean",
				"status": "start",
				"cron":   j.configuration.Server.CleanConfig.Schedule,
			}
		} else {
			logFields = logrus.Fields{
				"job":    "clean",
				"status": "forced",
			}
		}
		j.logService.Log.WithFields(logFields).Info(fmt.Sprintf("Found %d files to purge", len(files)))
	}

	var purgedCount int
	for i := range files {
		if err := j.trashService.PurgeFile(&files[i]); err != nil {
			j.logService.Log.WithFields(logrus.Fields{
				"job":    "clean",
				"status": "error",
				"error":  err.Error(),
				"file":   files[i].Name,
				"path":   files[i].FullPath,
			}).Error("Failed to purge file")
			continue
		}
		purgedCount++
	}
	if purgedCount > 0 {
		j.logService.Log.WithFields(logrus.Fields{
			"job":    "clean",
			"status": "success",
			"count":  purgedCount,
		}).Info("cleaning job finished")
	}
}
