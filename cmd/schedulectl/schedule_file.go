package main

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"care-schedule/internal/model"
)

// scheduleFile is the on-disk shape of a schedule. JSON files decode too,
// since JSON is valid YAML.
type scheduleFile struct {
	Activities   []model.Activity    `yaml:"activities"`
	Appointments []model.Appointment `yaml:"appointments"`
}

func loadSchedule(path string) (scheduleFile, error) {
	var sf scheduleFile

	data, err := os.ReadFile(path)
	if err != nil {
		return sf, fmt.Errorf("read schedule: %w", err)
	}
	if err := yaml.Unmarshal(data, &sf); err != nil {
		return sf, fmt.Errorf("decode schedule %s: %w", path, err)
	}
	return sf, nil
}
