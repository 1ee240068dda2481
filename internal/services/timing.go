package services

import (
	"time"

	log "github.com/sirupsen/logrus"
)

// TrackTime logs how long funcName ran. Use with defer and time.Now().
func TrackTime(funcName string, start time.Time) {
	elapsed := time.Since(start)
	log.WithField("elapsed_us", elapsed.Microseconds()).Debugf("%s finished", funcName)
}
