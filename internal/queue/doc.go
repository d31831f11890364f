// Package queue carries job messages between the submission path and the
// worker over a Redis list.
//
// Messages are consumed destructively: a blocking pop removes the message,
// and there is no acknowledgment or redelivery protocol. A message taken by
// a worker that then crashes is not retried.
package queue
