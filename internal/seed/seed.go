// Package seed содержит встроенный стартовый набор данных CRM.
package seed

import (
	"embed"
	"encoding/json"
	"fmt"

	"sales-crm-service/internal/model"
)

//go:embed data/*.json
var files embed.FS

// Dataset полный стартовый набор данных.
type Dataset struct {
	Leads []model.Lead
	Reps  []model.SalesRep
	Deals []model.Deal
	Teams []model.Team
}

// Load читает встроенные JSON-файлы.
func Load() (Dataset, error) {
	var ds Dataset
	if err := readJSON("data/leads.json", &ds.Leads); err != nil {
		return Dataset{}, err
	}
	if err := readJSON("data/sales_reps.json", &ds.Reps); err != nil {
		return Dataset{}, err
	}
	if err := readJSON("data/deals.json", &ds.Deals); err != nil {
		return Dataset{}, err
	}
	if err := readJSON("data/teams.json", &ds.Teams); err != nil {
		return Dataset{}, err
	}
	return ds, nil
}

func readJSON(name string, dst any) error {
	data, err := files.ReadFile(name)
	if err != nil {
		return fmt.Errorf("read seed %s: %w", name, err)
	}
	if err := json.Unmarshal(data, dst); err != nil {
		return fmt.Errorf("parse seed %s: %w", name, err)
	}
	return nil
}
