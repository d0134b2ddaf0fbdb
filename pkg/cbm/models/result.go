package models

import (
	"encoding/json"
	"math"
)

// ResultRow is the computed volume of one bin.
type ResultRow struct {
	// ID is the bin identifier or a synthesized "Row<n>".
	ID string `json:"bin_id" yaml:"bin_id"`
	// HeightCM is the coerced height in centimetres.
	HeightCM float64 `json:"height_cm" yaml:"height_cm"`
	// WidthCM is the coerced width in centimetres.
	WidthCM float64 `json:"width_cm" yaml:"width_cm"`
	// DepthCM is the coerced depth in centimetres.
	DepthCM float64 `json:"depth_cm" yaml:"depth_cm"`
	// VolumeM3 is the rounded volume in cubic metres.
	VolumeM3 float64 `json:"cbm_m3" yaml:"cbm_m3"`
}

// Finite reports whether the volume is a finite number.
func (r ResultRow) Finite() bool {
	return IsFinite(r.VolumeM3)
}

// MarshalJSON encodes infinite and NaN values as null.
func (r ResultRow) MarshalJSON() ([]byte, error) {
	return json.Marshal(r.jsonRecord(""))
}

// Record is a result row with the auxiliary usage label carried from the
// source table.
type Record struct {
	ResultRow `yaml:",inline"`
	// Usage is the optional bin usage (e.g. drawer, non-drawer).
	Usage string `json:"usage,omitempty" yaml:"usage,omitempty"`
}

// MarshalJSON encodes infinite and NaN values as null.
func (r Record) MarshalJSON() ([]byte, error) {
	return json.Marshal(r.ResultRow.jsonRecord(r.Usage))
}

// jsonRecord is the wire form of a Record.
type jsonRecord struct {
	ID       string   `json:"bin_id"`
	HeightCM *float64 `json:"height_cm"`
	WidthCM  *float64 `json:"width_cm"`
	DepthCM  *float64 `json:"depth_cm"`
	VolumeM3 *float64 `json:"cbm_m3"`
	Usage    string   `json:"usage,omitempty"`
}

func (r ResultRow) jsonRecord(usage string) jsonRecord {
	return jsonRecord{
		ID:       r.ID,
		HeightCM: finiteOrNil(r.HeightCM),
		WidthCM:  finiteOrNil(r.WidthCM),
		DepthCM:  finiteOrNil(r.DepthCM),
		VolumeM3: finiteOrNil(r.VolumeM3),
		Usage:    usage,
	}
}

// IsFinite reports whether v is neither infinite nor NaN.
func IsFinite(v float64) bool {
	return !math.IsInf(v, 0) && !math.IsNaN(v)
}

func finiteOrNil(v float64) *float64 {
	if !IsFinite(v) {
		return nil
	}
	return &v
}
