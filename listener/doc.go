/*
 Package listener defines the push-style event protocol documents are exchanged with.

 Parsers emit events, renderers consume them and a Block tree can be walked to produce them.
 Begin and end events are always well nested: every BeginX is matched by exactly one EndX at the same depth.
 Several composable listeners are provided to record, replay, broadcast and delegate events.
*/
package listener
