// Package output serializes calculation reports.
package output

import (
	"encoding/json"

	"github.com/ukaji3/cbmcalc-go/pkg/cbm/models"
	"go.yaml.in/yaml/v3"
)

// ToJSON serializes a report to JSON.
func ToJSON(rep *models.Report, pretty bool) ([]byte, error) {
	if pretty {
		return json.MarshalIndent(rep, "", "  ")
	}
	return json.Marshal(rep)
}

// ToYAML serializes a report to YAML.
func ToYAML(rep *models.Report) ([]byte, error) {
	return yaml.Marshal(rep)
}
