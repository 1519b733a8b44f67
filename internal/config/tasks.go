package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/osse101/JobHunter_Go/internal/domain"
	"github.com/osse101/JobHunter_Go/internal/validation"
)

// taskCatalog is the on-disk shape of the daily task file
type taskCatalog struct {
	Tasks []domain.DailyTask `yaml:"tasks"`
}

// LoadTaskCatalog reads the daily task list from a YAML file.
// A missing file or empty path yields the built-in defaults.
func LoadTaskCatalog(path string) ([]domain.DailyTask, error) {
	if path == "" {
		return domain.DefaultDailyTasks(), nil
	}

	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return domain.DefaultDailyTasks(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("read task catalog %s: %w", path, err)
	}

	schema, err := validation.NewSchemaValidator(validation.SchemaDailyTasks)
	if err != nil {
		return nil, err
	}
	if err := schema.ValidateYAML(data); err != nil {
		return nil, fmt.Errorf("%w: task catalog %s: %w", domain.ErrInvalidConfig, path, err)
	}

	var catalog taskCatalog
	if err := yaml.Unmarshal(data, &catalog); err != nil {
		return nil, fmt.Errorf("%w: parse task catalog %s: %w", domain.ErrInvalidConfig, path, err)
	}
	if err := validateTasks(catalog.Tasks); err != nil {
		return nil, fmt.Errorf("%w: task catalog %s: %w", domain.ErrInvalidConfig, path, err)
	}

	for i := range catalog.Tasks {
		catalog.Tasks[i].IsCompleted = false
	}
	return catalog.Tasks, nil
}

// validateTasks checks what the schema cannot express
func validateTasks(tasks []domain.DailyTask) error {
	if len(tasks) == 0 {
		return errors.New("no tasks defined")
	}
	seen := make(map[string]bool, len(tasks))
	for _, t := range tasks {
		if t.ID == "" {
			return fmt.Errorf("task %q has no id", t.Title)
		}
		if seen[t.ID] {
			return fmt.Errorf("duplicate task id %q", t.ID)
		}
		seen[t.ID] = true
		if t.Title == "" {
			return fmt.Errorf("task %s has no title", t.ID)
		}
		if t.XPReward < 0 {
			return fmt.Errorf("task %s has negative xp_reward", t.ID)
		}
	}
	return nil
}
