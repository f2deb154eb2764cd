package schema

// ConfigVersionKey marks every ContentState with the schema vocabulary it was
// authored against, so stored payloads can be migrated if the vocabulary
// changes shape.
const ConfigVersionKey = "config_version"

// ConfigVersionV1 is the current content configuration version.
const ConfigVersionV1 = "v1"
