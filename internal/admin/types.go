package admin

import (
	"time"

	analyticsadmin "google.golang.org/api/analyticsadmin/v1beta"
)

// AccountSummary is a Google Analytics account together with summaries of
// the properties under it.
type AccountSummary struct {
	Account     string            `json:"account"`
	DisplayName string            `json:"displayName"`
	Properties  []PropertySummary `json:"properties"`
}

// PropertySummary is the per-property slice of an account summary.
type PropertySummary struct {
	Property    string `json:"property"`
	DisplayName string `json:"displayName"`
	PropertyType string `json:"propertyType,omitempty"`
}

// Property holds the metadata of a single Analytics property.
type Property struct {
	Name             string    `json:"name"`
	DisplayName      string    `json:"displayName"`
	Parent           string    `json:"parent,omitempty"`
	PropertyType     string    `json:"propertyType,omitempty"`
	CurrencyCode     string    `json:"currencyCode,omitempty"`
	TimeZone         string    `json:"timeZone,omitempty"`
	IndustryCategory string    `json:"industryCategory,omitempty"`
	ServiceLevel     string    `json:"serviceLevel,omitempty"`
	CreateTime       time.Time `json:"createTime,omitzero"`
	UpdateTime       time.Time `json:"updateTime,omitzero"`
}

// GoogleAdsLink is a link between a property and a Google Ads customer.
type GoogleAdsLink struct {
	Name                      string    `json:"name"`
	CustomerID                string    `json:"customerId"`
	CanManageClients          bool      `json:"canManageClients"`
	AdsPersonalizationEnabled bool      `json:"adsPersonalizationEnabled"`
	CreatorEmail              string    `json:"creatorEmailAddress,omitempty"`
	CreateTime                time.Time `json:"createTime,omitzero"`
	UpdateTime                time.Time `json:"updateTime,omitzero"`
}

// CustomDimension is a property-defined reporting dimension.
type CustomDimension struct {
	Name                       string `json:"name"`
	ParameterName              string `json:"parameterName"`
	DisplayName                string `json:"displayName"`
	Description                string `json:"description,omitempty"`
	Scope                      string `json:"scope"`
	DisallowAdsPersonalization bool   `json:"disallowAdsPersonalization,omitempty"`
}

// CustomMetric is a property-defined reporting metric.
type CustomMetric struct {
	Name            string   `json:"name"`
	ParameterName   string   `json:"parameterName"`
	DisplayName     string   `json:"displayName"`
	Description     string   `json:"description,omitempty"`
	MeasurementUnit string   `json:"measurementUnit"`
	Scope           string   `json:"scope"`
	RestrictedTypes []string `json:"restrictedMetricType,omitempty"`
}

// CustomDefinitions bundles a property's custom dimensions and metrics,
// the result shape of the get_custom_dimensions_and_metrics tool.
type CustomDefinitions struct {
	Dimensions []CustomDimension `json:"dimensions"`
	Metrics    []CustomMetric    `json:"metrics"`
}

func toAccountSummary(s *analyticsadmin.GoogleAnalyticsAdminV1betaAccountSummary) AccountSummary {
	if s == nil {
		return AccountSummary{}
	}

	result := AccountSummary{
		Account:     s.Account,
		DisplayName: s.DisplayName,
	}
	for _, p := range s.PropertySummaries {
		result.Properties = append(result.Properties, PropertySummary{
			Property:     p.Property,
			DisplayName:  p.DisplayName,
			PropertyType: p.PropertyType,
		})
	}
	return result
}

func toProperty(p *analyticsadmin.GoogleAnalyticsAdminV1betaProperty) Property {
	if p == nil {
		return Property{}
	}

	return Property{
		Name:             p.Name,
		DisplayName:      p.DisplayName,
		Parent:           p.Parent,
		PropertyType:     p.PropertyType,
		CurrencyCode:     p.CurrencyCode,
		TimeZone:         p.TimeZone,
		IndustryCategory: p.IndustryCategory,
		ServiceLevel:     p.ServiceLevel,
		CreateTime:       parseTime(p.CreateTime),
		UpdateTime:       parseTime(p.UpdateTime),
	}
}

func toGoogleAdsLink(l *analyticsadmin.GoogleAnalyticsAdminV1betaGoogleAdsLink) GoogleAdsLink {
	if l == nil {
		return GoogleAdsLink{}
	}

	return GoogleAdsLink{
		Name:                      l.Name,
		CustomerID:                l.CustomerId,
		CanManageClients:          l.CanManageClients,
		AdsPersonalizationEnabled: l.AdsPersonalizationEnabled,
		CreatorEmail:              l.CreatorEmailAddress,
		CreateTime:                parseTime(l.CreateTime),
		UpdateTime:                parseTime(l.UpdateTime),
	}
}

func toCustomDimension(d *analyticsadmin.GoogleAnalyticsAdminV1betaCustomDimension) CustomDimension {
	if d == nil {
		return CustomDimension{}
	}

	return CustomDimension{
		Name:                       d.Name,
		ParameterName:              d.ParameterName,
		DisplayName:                d.DisplayName,
		Description:                d.Description,
		Scope:                      d.Scope,
		DisallowAdsPersonalization: d.DisallowAdsPersonalization,
	}
}

func toCustomMetric(m *analyticsadmin.GoogleAnalyticsAdminV1betaCustomMetric) CustomMetric {
	if m == nil {
		return CustomMetric{}
	}

	return CustomMetric{
		Name:            m.Name,
		ParameterName:   m.ParameterName,
		DisplayName:     m.DisplayName,
		Description:     m.Description,
		MeasurementUnit: m.MeasurementUnit,
		Scope:           m.Scope,
		RestrictedTypes: m.RestrictedMetricType,
	}
}

// parseTime converts an RFC3339 timestamp from the API, returning the zero
// time for empty or malformed values rather than failing the whole call.
func parseTime(s string) time.Time {
	if s == "" {
		return time.Time{}
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}
	}
	return t
}
