package metrics

// IncrementFlags increments the accepted community flag counter
func (m *Metrics) IncrementFlags() {
	m.safeExecute("IncrementFlags", func() {
		m.FlagsTotal.Inc()
	})
}

// IncrementContentCreated increments the content creation counter for a type
func (m *Metrics) IncrementContentCreated(contentType string) {
	m.safeExecute("IncrementContentCreated", func() {
		m.ContentCreatedTotal.WithLabelValues(contentType).Inc()
	})
}

// IncrementContentAutoFlagged increments the blacklist auto-flag counter
func (m *Metrics) IncrementContentAutoFlagged() {
	m.safeExecute("IncrementContentAutoFlagged", func() {
		m.ContentAutoFlaggedTotal.Inc()
	})
}

// IncrementContentRejected increments the safety-check rejection counter
func (m *Metrics) IncrementContentRejected() {
	m.safeExecute("IncrementContentRejected", func() {
		m.ContentRejectedTotal.Inc()
	})
}

// IncrementAdminAction increments the admin action counter for an action type
func (m *Metrics) IncrementAdminAction(action string) {
	m.safeExecute("IncrementAdminAction", func() {
		m.AdminActionsTotal.WithLabelValues(action).Inc()
	})
}

// SetQueuePendingTotal sets the pending queue size gauge
func (m *Metrics) SetQueuePendingTotal(count int64) {
	m.safeExecute("SetQueuePendingTotal", func() {
		m.QueuePendingTotal.Set(float64(count))
	})
}

// SetQueueDisputedTotal sets the disputed queue size gauge
func (m *Metrics) SetQueueDisputedTotal(count int64) {
	m.safeExecute("SetQueueDisputedTotal", func() {
		m.QueueDisputedTotal.Set(float64(count))
	})
}

// SetBlacklistActiveTotal sets the active blacklist keyword gauge
func (m *Metrics) SetBlacklistActiveTotal(count int64) {
	m.safeExecute("SetBlacklistActiveTotal", func() {
		m.BlacklistActiveTotal.Set(float64(count))
	})
}
