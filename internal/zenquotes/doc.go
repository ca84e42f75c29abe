// Package zenquotes provides an HTTP client for the ZenQuotes APIs.
//
// # Endpoints
//
//   - GET {quotes}/api/random, /api/today: JSON array, first element {q, a}
//   - GET {quotes}/api/quotes/author/{slug}/{key}: same shape, requires a key
//   - GET {quotes}/api/image: image bytes, possibly behind a redirect
//   - GET {history}/api/{month}/{day}: {data: {Events, Births, Deaths: [{text}]}}
//
// # Validation
//
// Responses are decoded into private wire structs and checked with
// go-playground/validator before they are converted to Quote, Image or
// history.DayRecord. Nothing downstream sees an unvalidated payload.
//
// # Errors
//
// Every failure wraps one of three sentinels:
//
//   - ErrNetwork: the request could not complete or returned a non-2xx status
//   - ErrEmptyResult: the request succeeded but carried nothing usable
//   - ErrUnexpectedShape: the payload could not be decoded or failed validation
//
// Describe maps them to a one-line message for notices. The client never
// retries.
package zenquotes
