package corrections

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
	"gopkg.in/yaml.v3"

	"github.com/turtacn/MedText-Intelligence/internal/infrastructure/monitoring/logging"
	"github.com/turtacn/MedText-Intelligence/pkg/errors"
)

// LoadTable reads and validates a YAML rule table from disk.
func LoadTable(path string) (*RuleTable, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrCodeRuleTableLoadFailed,
			fmt.Sprintf("failed to read rule table %q", path))
	}
	table := &RuleTable{}
	if err := yaml.Unmarshal(data, table); err != nil {
		return nil, errors.Wrap(err, errors.ErrCodeRuleTableInvalid,
			fmt.Sprintf("failed to parse rule table %q", path))
	}
	if err := table.Validate(); err != nil {
		return nil, err
	}

	// File-provided tables inherit the built-in medication maps when they do
	// not override them, so a rules file can stay regex-only.
	defaults := DefaultTable()
	if table.BrandGeneric == nil {
		table.BrandGeneric = defaults.BrandGeneric
	}
	if table.SpellingAU == nil {
		table.SpellingAU = defaults.SpellingAU
	}
	if len(table.MedicationLexicon) == 0 {
		table.MedicationLexicon = defaults.MedicationLexicon
	}
	return table, nil
}

// WatchTable monitors the rule table file and hot-reloads the corrector when
// it changes. A file that fails to parse or validate is skipped; the active
// table stays in place. Returns a stop function that releases the watcher.
func WatchTable(path string, corrector Corrector, log logging.Logger) (func(), error) {
	if log == nil {
		log = logging.NewNopLogger()
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrCodeInternal, "failed to create rules watcher")
	}
	// Watch the directory rather than the file: editors and config reloaders
	// commonly replace the file via rename, which drops a file-level watch.
	if err := watcher.Add(filepath.Dir(path)); err != nil {
		_ = watcher.Close()
		return nil, errors.Wrap(err, errors.ErrCodeInternal, "failed to watch rules directory")
	}

	done := make(chan struct{})
	go func() {
		for {
			select {
			case event, ok := <-watcher.Events:
				if !ok {
					return
				}
				if filepath.Clean(event.Name) != filepath.Clean(path) {
					continue
				}
				if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
					continue
				}
				table, loadErr := LoadTable(path)
				if loadErr != nil {
					log.Warn("rule table change rejected",
						logging.String("path", path), logging.Err(loadErr))
					continue
				}
				if reloadErr := corrector.Reload(table); reloadErr != nil {
					log.Warn("rule table reload failed",
						logging.String("path", path), logging.Err(reloadErr))
				}
			case watchErr, ok := <-watcher.Errors:
				if !ok {
					return
				}
				log.Warn("rules watcher error", logging.Err(watchErr))
			case <-done:
				return
			}
		}
	}()

	return func() {
		close(done)
		_ = watcher.Close()
	}, nil
}

//Personal.AI order the ending
