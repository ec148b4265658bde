// Package clierr turns errors returned by command bodies into diagnostics
// on the error stream and a process exit code.
//
// Every command's RunE is wrapped with [Handle]. When the body fails, the
// error is classified in a fixed order:
//
//  1. *ExitError: returned unchanged, nothing is printed
//  2. *polar.ValidationError: "Validation error" with one line per field
//  3. *polar.APIError: "API error (<status>)" followed by the body
//  4. *polar.SDKError: "API error" with its body, or "Error: <message>"
//  5. connection failures: "Connection failed"
//  6. timeouts: "Request timed out"
//  7. anything else: "Error: <message>"
//
// All but the first produce an *ExitError with code [ExitFailure]. The
// dispatcher maps the final error to a process exit code with [ExitCode].
package clierr
