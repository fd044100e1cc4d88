package google

import (
	"context"
	"os"

	"golang.org/x/oauth2/google"
	"google.golang.org/api/option"

	"github.com/teemow/analytics-mcp/internal/apierror"
)

// ProjectEnvVar names the environment variable consulted for the quota
// project when none is configured explicitly.
const ProjectEnvVar = "GOOGLE_CLOUD_PROJECT"

// ClientOptions resolves Application Default Credentials scoped to
// read-only Analytics access and returns the client options for building
// the Admin and Data API services. quotaProject narrows billing/quota
// attribution to an explicit cloud project; when empty, GOOGLE_CLOUD_PROJECT
// is consulted, and when that is unset too, the credentials' own project
// applies.
//
// A credential discovery failure is an authentication error: it is fatal
// and never retried, since missing credentials are not transient.
func ClientOptions(ctx context.Context, quotaProject string) ([]option.ClientOption, error) {
	creds, err := google.FindDefaultCredentials(ctx, AnalyticsReadonlyScope)
	if err != nil {
		return nil, apierror.New(apierror.KindAuthentication,
			"no usable Application Default Credentials: %v (run 'gcloud auth application-default login' or set GOOGLE_APPLICATION_CREDENTIALS)", err)
	}

	opts := []option.ClientOption{option.WithCredentials(creds)}

	if quotaProject == "" {
		quotaProject = os.Getenv(ProjectEnvVar)
	}
	if quotaProject != "" {
		opts = append(opts, option.WithQuotaProject(quotaProject))
	}

	return opts, nil
}
