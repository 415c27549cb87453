// SPDX-License-Identifier: ISC
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"os"
	"path"
	"path/filepath"

	"github.com/fsnotify/fsnotify"

	"github.com/bitmark-inc/logger"

	"github.com/dropmint/dropmintd/fault"
)

// watch the configuration file for edits
//
// a running node cannot re-read its configuration so an edit only
// logs that a restart is required
func watchConfigurationFile(targetFile string, log *logger.L) error {

	filePath, err := filepath.Abs(filepath.Clean(targetFile))
	if nil != err {
		return err
	}

	if _, err := os.Stat(filePath); os.IsNotExist(err) {
		return fault.ErrRecordNotFound
	}

	watcher, err := fsnotify.NewWatcher()
	if nil != err {
		return err
	}

	err = watcher.Add(filePath)
	if nil != err {
		watcher.Close()
		return err
	}

	go func() {
		for {
			event, ok := <-watcher.Events
			if !ok {
				return
			}
			log.Infof("file event: %v", event)

			if watcherEventFileRemove(event) {
				log.Errorf("configuration file %s removed, stop watching", filePath)
				watcher.Close()
				return
			}

			if path.Base(event.Name) != path.Base(filePath) {
				log.Debugf("file %s not match, discard event", event.Name)
				continue
			}

			if watcherEventFileChange(event) {
				log.Warn("configuration file changed, restart required to apply")
			}
		}
	}()

	return nil
}

func watcherEventFileRemove(event fsnotify.Event) bool {
	return event.Name == "" || event.Op&fsnotify.Remove == fsnotify.Remove
}

func watcherEventFileChange(event fsnotify.Event) bool {
	return event.Op&fsnotify.Write == fsnotify.Write ||
		event.Op&fsnotify.Chmod == fsnotify.Chmod
}
