// Package async bridges asynchronous, Result-producing computations into rop
// pipelines.
//
// Key constructs:
// - Promise: single-assignment handle, completed once via Complete or Fail
// - Bind/BindFailure: hand the matching payload to an async function, the other variant resolves at once
// - Binder/FailureBinder: operator forms for use with package op
// - Then: resume with a synchronous step exactly once when a promise resolves
//
// Domain failures stay inside the rop.Result carried by the promise. Promise.Fail
// is reserved for faults of the executor itself. Nothing here cancels, retries
// or times out a computation; a context passed to Get only bounds the wait.
package async
