package domain

// Filter is the transient predicate applied to store lookups. It is never
// persisted; the admin console reconstructs it from callback payloads on
// every interaction.
//
// Type and Status are optional equality constraints, combined with AND when
// both are set. Statuses expresses "status ∈ set" and backs the implicit
// active filter (new + in_progress); it is mutually exclusive with Status.
type Filter struct {
	Type     *ApplicationType
	Status   *Status
	Statuses []Status
}

// ActiveFilter returns the default predicate used when a list command
// carries no arguments: applications that are new or in progress.
func ActiveFilter() Filter {
	return Filter{Statuses: []Status{StatusNew, StatusInProgress}}
}
