/*
Package csp provides channels and a multi-way Selector built on mutexes and
condition variables.

| Operation | Channel state          | Result                                                                 |
|-----------|------------------------|------------------------------------------------------------------------|
| Receive   | Open, receiver waiting | Block                                                                  |
|           | Open and Not Empty     | Value, true                                                            |
|           | Open and Empty         | Block until a Send or Close                                            |
|           | Closed and Not Empty   | Value, true (buffered values drain in order)                           |
|           | Closed and Empty       | \<zero value>, false                                                   |
| Send      | Open, receiver waiting | Direct handoff, the buffer is skipped                                  |
|           | Open and Not Full      | Write Value                                                            |
|           | Open and Full          | Block until a Receive or Close                                         |
|           | Closed                 | **ErrClosed**                                                          |
| Close     | Open                   | Closes Channel; blocked senders get ErrClosed, <br/> blocked receivers get \<zero value>, false |
|           | Closed                 | **ErrAlreadyClosed**                                                   |

A Select locks every channel of its cases in channel creation order, tries the
cases in a random order, and otherwise queues one waiter per case. All waiters
of one call share a commit gate, the first channel to flip it wins the call and
the other waiters are dropped.
*/

package csp
