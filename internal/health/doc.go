// Package health implements the probing half of the ribbon: it keeps the
// latest health state of every configured service up to date.
//
// # Key Components
//
//	Registry   - Immutable, ordered list of services (index = segment order)
//	Store      - One atomically replaced Status per service
//	Checker    - Performs a single HTTP GET probe and times it
//	Scheduler  - Fixed-interval ticker that fans out one check per service
//	Restarter  - Launches a service's restart command, fire-and-forget
//	Engine     - Owns all of the above and is handed to the UI
//
// # Message Flow
//
//  1. Scheduler fires immediately on Start, then every interval (default 10s)
//  2. Each fire starts one goroutine per service calling Engine.Check
//  3. Check probes, replaces the Store entry, logs, and signals Invalidations
//  4. The UI owner receives from Invalidations and redraws from a Snapshot
//
// Ticks never wait for the previous tick's checks, so two checks for the same
// service may be in flight at once. Whichever finishes last owns the Store
// entry. Stopping the scheduler only prevents future ticks; in-flight checks
// and restart processes run to completion.
package health
