package systems

// Pipeline stage IDs, also used as perf phase names.
const (
	StageKinematics  = "kinematics"
	StageOrientation = "sync_orientation"
	StageTransform   = "sync_transform"
	StageReset       = "reset"
)

// SystemInfo describes a pipeline stage for logs and overlays.
type SystemInfo struct {
	ID          string // Internal identifier (used for perf tracking)
	Name        string // Display name
	Description string // What this system does
	Category    string // Grouping (e.g., "core", "sync")
}

// SystemRegistry holds metadata about all systems.
// This centralizes stage naming so the HUD and perf tracker stay in sync.
type SystemRegistry struct {
	systems []SystemInfo
	byID    map[string]SystemInfo
}

// NewSystemRegistry creates a registry with all known systems.
func NewSystemRegistry() *SystemRegistry {
	reg := &SystemRegistry{
		byID: make(map[string]SystemInfo),
	}
	reg.registerDefaults()
	return reg
}

// registerDefaults adds the spatial pipeline stages in the order they run.
// Update this when adding new systems.
func (r *SystemRegistry) registerDefaults() {
	r.Register(SystemInfo{ID: StageKinematics, Name: "Kinematics", Description: "Integrates acceleration and velocity", Category: "motion"})
	r.Register(SystemInfo{ID: StageOrientation, Name: "Orientation Sync", Description: "Reconciles Rotation and Direction", Category: "sync"})
	r.Register(SystemInfo{ID: StageTransform, Name: "Transform Sync", Description: "Pushes and pulls the host transform", Category: "sync"})
	r.Register(SystemInfo{ID: StageReset, Name: "Change Reset", Description: "Clears change flags for the next frame", Category: "core"})
}

// Register adds a system to the registry.
func (r *SystemRegistry) Register(info SystemInfo) {
	r.systems = append(r.systems, info)
	r.byID[info.ID] = info
}

// Get returns system info by ID.
func (r *SystemRegistry) Get(id string) (SystemInfo, bool) {
	info, ok := r.byID[id]
	return info, ok
}

// GetName returns the display name for a system ID.
// Falls back to the ID itself if not found.
func (r *SystemRegistry) GetName(id string) string {
	if info, ok := r.byID[id]; ok {
		return info.Name
	}
	return id
}

// All returns all registered systems.
func (r *SystemRegistry) All() []SystemInfo {
	return r.systems
}

// IDs returns all system IDs in registration order.
func (r *SystemRegistry) IDs() []string {
	ids := make([]string, len(r.systems))
	for i, info := range r.systems {
		ids[i] = info.ID
	}
	return ids
}
