package utils

// LoggerInitializationFailedMessageFormat reports logger construction failures.
const LoggerInitializationFailedMessageFormat = "failed to initialize logger: %w"

// ApplicationExecutionFailedMessage prefixes fatal execution errors.
const ApplicationExecutionFailedMessage = "treedoc failed"
