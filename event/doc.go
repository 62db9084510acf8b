// Package event provides a synchronous single-event publish/subscribe
// dispatcher.
//
// A Dispatcher fans each payload out to its subscribers in subscription
// order, on the caller's goroutine, before Dispatch returns. There is no
// queuing, batching, or asynchronous delivery.
//
// Owners keep the Dispatcher private and hand consumers the restricted view
// returned by AsEvent, which can subscribe but cannot dispatch:
//
//	changes := event.NewDispatcher[int]()
//	sub := changes.AsEvent().Subscribe(func(n int) {
//	    fmt.Println("got", n)
//	})
//	defer sub.Unsubscribe()
//
//	changes.Dispatch(42) // prints "got 42" before returning
//
// # Reentrancy
//
// Dispatch iterates a snapshot of the subscribers taken when it starts.
// Handlers subscribed during a dispatch receive the next one. Handlers
// unsubscribed during a dispatch are skipped if they have not run yet.
// A panicking handler aborts the dispatch and the panic reaches the caller
// of Dispatch.
//
// # Concurrency
//
// Dispatcher is not safe for concurrent use. Confine each Dispatcher, and
// every handler it calls, to a single goroutine.
package event
