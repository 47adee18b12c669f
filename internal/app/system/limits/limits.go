// internal/app/system/limits/limits.go
package limits

// Request body size limits. Oversized bodies are rejected before
// decoding to keep a single request from exhausting memory.
const (
	// MaxJSONBody caps every JSON request body. The portfolio payloads
	// are small; 10 MB leaves room for image URL lists and long bios.
	MaxJSONBody = 10 << 20 // 10 MB
)
