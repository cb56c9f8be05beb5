// Package session is the single owner of a visualiser's live state: the
// graph, the selected goal and its heuristic table, the step history and
// the run controller.
//
// Every live-graph mutation goes through a Session method and is
// serialised behind one mutex. Runs operate on a clone taken at Run time,
// so editing the graph while a run is paused or pending never corrupts
// recorded history. Edits that change the graph cancel any active run;
// most also clear history (see each method).
//
// Hooks are never called while the Session lock is held, so a hook may call
// back into the Session.
package session
