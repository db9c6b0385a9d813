// Package fetch implements the per-mount asynchronous retrieval lifecycle.
//
// A Controller moves through
//
//	Idle --Start--> Loading --Apply(ok)--> Success
//	                Loading --Apply(err)--> Error
//
// and never leaves Success or Error. A view creates one Controller when it
// mounts, calls Start once, runs the returned Task off the render loop and
// hands the Result back through Apply.
//
// Every Controller carries a process-unique token. Results carry the token of
// the Controller that issued them, so a result from an earlier mount can never
// settle a later one. Teardown marks the Controller dead and cancels the
// request context; results that arrive afterwards are dropped and Apply
// reports false without touching state.
//
// Transport, status and decode failures all collapse to Error with the error
// text as the message. Callers that need the cause inspect the error before
// it reaches the controller.
//
// A Controller is not safe for concurrent use. It is owned by the view and
// only touched from the render loop; the Task is the only part that runs on
// another goroutine, and it does not touch the Controller.
package fetch
