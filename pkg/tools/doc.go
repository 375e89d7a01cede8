// Package tools groups tool-definition handling for the gateway.
//
// Sub-packages:
//   - [github.com/ldelgado/promptgate/pkg/tools/toolbox] — tool definitions and an order-preserving collection
//   - [github.com/ldelgado/promptgate/pkg/tools/mcptool] — conversion from MCP tool descriptors
//
// The gateway only surfaces tool schemas to models and recovers the calls the
// model makes; executing tools (and deciding whether to) is the caller's job.
package tools
