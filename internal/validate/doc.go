package validate

// Package validate implements folder validation: it discovers texture files,
// groups them into texture sets by file name, and checks every set against a
// RequirementConfig. Image decode failures are reported per map and never
// abort a run.
