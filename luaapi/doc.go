// Package luaapi exposes a navhist.Manager to Lua plugins as the `nav`
// module: event reporting (on_motion, on_edit), navigation
// (jump_older/newer, change_older/newer), and marks. Positions cross
// the boundary as {doc, line, col} tables; boundary and not-found
// conditions come back as nil plus a reason string rather than raised
// errors, since they are normal outcomes.
package luaapi
