package utils

// REVISION is reported on the welcome and status endpoints
const REVISION = "1.0.2"
