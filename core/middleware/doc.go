// Package middleware groups the fiber middleware mounted by the start command.
//
//   - rayid tags every request with an X-Ray-ID, reusing one sent by the client.
//   - auth checks the X-API-Key (or bearer) header against server.api_key and
//     lets listed path prefixes such as /metrics through.
//
// Register rayid first so the request logger and auth failures carry the id.
package middleware
