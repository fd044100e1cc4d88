package google

// AnalyticsReadonlyScope is the only OAuth scope this server ever requests.
// Every tool is a read, so the broader analytics or analytics.edit scopes
// are deliberately never used.
const AnalyticsReadonlyScope = "https://www.googleapis.com/auth/analytics.readonly"
