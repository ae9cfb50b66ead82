package repository

import (
	_ "embed"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"
)

//go:embed seed.yaml
var seedYAML []byte

type seedSurvey struct {
	ID       string   `yaml:"id"`
	Question string   `yaml:"question"`
	Date     string   `yaml:"date"`
	Answers  []Answer `yaml:"answers"`
}

// DefaultSeed returns the surveys the stub API starts with.
func DefaultSeed() ([]Survey, error) {
	return ParseSeed(seedYAML)
}

// ParseSeed decodes a YAML list of surveys.
func ParseSeed(raw []byte) ([]Survey, error) {
	var entries []seedSurvey
	if err := yaml.Unmarshal(raw, &entries); err != nil {
		return nil, fmt.Errorf("decode survey seed: %w", err)
	}

	surveys := make([]Survey, 0, len(entries))
	for i, entry := range entries {
		id, err := uuid.Parse(entry.ID)
		if err != nil {
			return nil, fmt.Errorf("survey seed %d: invalid id: %w", i, err)
		}
		date, err := time.Parse(time.DateOnly, entry.Date)
		if err != nil {
			return nil, fmt.Errorf("survey seed %d: invalid date: %w", i, err)
		}
		if entry.Question == "" || len(entry.Answers) == 0 {
			return nil, fmt.Errorf("survey seed %d: question and answers are required", i)
		}
		surveys = append(surveys, Survey{
			ID:       id,
			Question: entry.Question,
			Answers:  entry.Answers,
			Date:     date.UTC(),
		})
	}
	return surveys, nil
}
