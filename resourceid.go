package resourceid

var defaultService = New()

// GenerateDatabaseID derives a database identifier from base using the
// default service.
func GenerateDatabaseID(base string) (string, error) {
	return defaultService.DatabaseID(base)
}

// GenerateInstanceID derives a timestamped instance identifier from base
// using the default service.
func GenerateInstanceID(base string) (string, error) {
	return defaultService.InstanceID(base)
}

// GenerateNewID shortens baseID to targetLength, see Service.NewID.
func GenerateNewID(baseID string, targetLength int) (string, error) {
	return defaultService.NewID(baseID, targetLength)
}
