package reporting

import (
	analyticsdata "google.golang.org/api/analyticsdata/v1beta"
)

// Metadata is the reporting schema of a property: every dimension and
// metric the Data API will accept for it, including custom definitions.
type Metadata struct {
	Dimensions []DimensionMetadata `json:"dimensions"`
	Metrics    []MetricMetadata    `json:"metrics"`
}

// DimensionMetadata describes one reportable dimension.
type DimensionMetadata struct {
	APIName          string `json:"apiName"`
	UIName           string `json:"uiName,omitempty"`
	Description      string `json:"description,omitempty"`
	Category         string `json:"category,omitempty"`
	CustomDefinition bool   `json:"customDefinition,omitempty"`
}

// MetricMetadata describes one reportable metric.
type MetricMetadata struct {
	APIName          string `json:"apiName"`
	UIName           string `json:"uiName,omitempty"`
	Description      string `json:"description,omitempty"`
	Category         string `json:"category,omitempty"`
	Type             string `json:"type,omitempty"`
	Expression       string `json:"expression,omitempty"`
	CustomDefinition bool   `json:"customDefinition,omitempty"`
}

func toMetadata(m *analyticsdata.Metadata) Metadata {
	result := Metadata{
		Dimensions: []DimensionMetadata{},
		Metrics:    []MetricMetadata{},
	}
	if m == nil {
		return result
	}

	for _, d := range m.Dimensions {
		result.Dimensions = append(result.Dimensions, DimensionMetadata{
			APIName:          d.ApiName,
			UIName:           d.UiName,
			Description:      d.Description,
			Category:         d.Category,
			CustomDefinition: d.CustomDefinition,
		})
	}
	for _, metric := range m.Metrics {
		result.Metrics = append(result.Metrics, MetricMetadata{
			APIName:          metric.ApiName,
			UIName:           metric.UiName,
			Description:      metric.Description,
			Category:         metric.Category,
			Type:             metric.Type,
			Expression:       metric.Expression,
			CustomDefinition: metric.CustomDefinition,
		})
	}
	return result
}
