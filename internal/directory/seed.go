package directory

import (
	"context"
	"fmt"

	"assignment-workflow-backend/internal/database/models"

	"gopkg.in/yaml.v3"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// SeedData is the fixture document loaded by the operator CLI
type SeedData struct {
	Teams []struct {
		Name        string `yaml:"name"`
		Title       string `yaml:"title"`
		Description string `yaml:"description"`
		Region      string `yaml:"region"`
		Crews       []struct {
			Name   string `yaml:"name"`
			Title  string `yaml:"title"`
			Region string `yaml:"region"`
			Size   int    `yaml:"size"`
		} `yaml:"crews"`
	} `yaml:"teams"`
	Projects []struct {
		Name   string `yaml:"name"`
		Title  string `yaml:"title"`
		Region string `yaml:"region"`
	} `yaml:"projects"`
}

// SeedResult counts rows written by Seed
type SeedResult struct {
	Teams    int
	Crews    int
	Projects int
}

// ParseSeedData decodes a fixture document
func ParseSeedData(data []byte) (*SeedData, error) {
	var seed SeedData
	if err := yaml.Unmarshal(data, &seed); err != nil {
		return nil, fmt.Errorf("failed to parse seed data: %w", err)
	}
	return &seed, nil
}

// Seed upserts teams, crews and projects by name in one transaction
func Seed(ctx context.Context, db *gorm.DB, seed *SeedData) (*SeedResult, error) {
	result := &SeedResult{}
	upsert := clause.OnConflict{
		Columns:   []clause.Column{{Name: "name"}},
		DoUpdates: clause.AssignmentColumns([]string{"title", "description", "region", "updated_at"}),
	}

	err := db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, t := range seed.Teams {
			team := &models.TradeTeam{
				DirectoryModel: models.DirectoryModel{Name: t.Name, Title: t.Title, Description: t.Description},
				Region:         t.Region,
			}
			if err := tx.Clauses(upsert).Create(team).Error; err != nil {
				return fmt.Errorf("failed to seed team %s: %w", t.Name, err)
			}
			// on conflict the row keeps its original id, so read it back
			var stored models.TradeTeam
			if err := tx.Select("id").Where("name = ?", t.Name).Take(&stored).Error; err != nil {
				return fmt.Errorf("failed to reload team %s: %w", t.Name, err)
			}
			teamID := stored.ID
			result.Teams++

			for _, c := range t.Crews {
				region := c.Region
				if region == "" {
					region = t.Region
				}
				size := c.Size
				if size == 0 {
					size = 1
				}
				crew := &models.TradeCrew{
					DirectoryModel: models.DirectoryModel{Name: c.Name, Title: c.Title},
					TeamID:         &teamID,
					Region:         region,
					Size:           size,
					Active:         true,
				}
				crewUpsert := clause.OnConflict{
					Columns:   []clause.Column{{Name: "name"}},
					DoUpdates: clause.AssignmentColumns([]string{"title", "team_id", "region", "size", "updated_at"}),
				}
				if err := tx.Clauses(crewUpsert).Create(crew).Error; err != nil {
					return fmt.Errorf("failed to seed crew %s: %w", c.Name, err)
				}
				result.Crews++
			}
		}

		for _, p := range seed.Projects {
			project := &models.Project{
				DirectoryModel: models.DirectoryModel{Name: p.Name, Title: p.Title},
				Status:         models.ProjectStatusActive,
				Region:         p.Region,
			}
			projectUpsert := clause.OnConflict{
				Columns:   []clause.Column{{Name: "name"}},
				DoUpdates: clause.AssignmentColumns([]string{"title", "region", "updated_at"}),
			}
			if err := tx.Clauses(projectUpsert).Create(project).Error; err != nil {
				return fmt.Errorf("failed to seed project %s: %w", p.Name, err)
			}
			result.Projects++
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}
