package autoid

import (
	"context"
	"fmt"
	"strings"
)

// reportRecentEntries caps how many generation events the report shows.
const reportRecentEntries = 10

// DebugReport renders a human-readable snapshot of the engine for bug
// reports: session identity, the active configuration, where the
// traversal currently stands, collision-registry size, and the most
// recent generation events. The report reflects the process-wide
// configuration; scoped overrides live on contexts the engine cannot see
// from here.
func (e *Engine) DebugReport() string {
	cfg := e.store.Get(context.Background())

	var b strings.Builder
	b.WriteString("autoid debug report\n")
	fmt.Fprintf(&b, "session: %s\n", e.session)

	b.WriteString("configuration:\n")
	fmt.Fprintf(&b, "  enable_auto_ids: %t\n", cfg.EnableAutoIDs)
	fmt.Fprintf(&b, "  namespace: %q\n", cfg.Namespace)
	fmt.Fprintf(&b, "  mode: %s\n", cfg.Mode)
	fmt.Fprintf(&b, "  enable_view_hierarchy_tracking: %t\n", cfg.EnableViewHierarchyTracking)
	fmt.Fprintf(&b, "  enable_ui_test_integration: %t\n", cfg.EnableUITestIntegration)
	fmt.Fprintf(&b, "  enable_debug_logging: %t\n", cfg.EnableDebugLogging)
	fmt.Fprintf(&b, "  global_prefix: %q\n", cfg.GlobalPrefix)
	fmt.Fprintf(&b, "  include_component_names: %t\n", cfg.IncludeComponentNames)
	fmt.Fprintf(&b, "  include_element_types: %t\n", cfg.IncludeElementTypes)

	b.WriteString("hierarchy:\n")
	fmt.Fprintf(&b, "  screen: %s\n", e.tracker.ScreenContext())
	if nav := e.tracker.NavigationState(); nav != "" {
		fmt.Fprintf(&b, "  navigation: %s\n", nav)
	}
	frames := e.tracker.Frames()
	fmt.Fprintf(&b, "  frames (%d): %v\n", len(frames), frames)
	if crumbs := e.tracker.Breadcrumbs(); len(crumbs) > 0 {
		fmt.Fprintf(&b, "  breadcrumbs: %s\n", strings.Join(crumbs, " > "))
	}

	fmt.Fprintf(&b, "registry: %d identifiers issued\n", e.registry.Len())

	entries := e.log.Entries()
	fmt.Fprintf(&b, "debug log: %d entries retained, %d evicted\n", len(entries), e.log.Dropped())
	if len(entries) > reportRecentEntries {
		entries = entries[len(entries)-reportRecentEntries:]
	}
	for _, entry := range entries {
		fmt.Fprintf(&b, "  %s subject=%q role=%q -> %s\n",
			entry.Time.Format("15:04:05.000"), entry.Subject, entry.Role, entry.ID)
	}

	return b.String()
}
