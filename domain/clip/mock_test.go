package clip

// mockFileChecker simulates file existence
type mockFileChecker struct {
	existingFiles map[string]bool
}

func newMockFileChecker(paths ...string) *mockFileChecker {
	m := &mockFileChecker{existingFiles: make(map[string]bool)}
	for _, p := range paths {
		m.existingFiles[p] = true
	}
	return m
}

func (m *mockFileChecker) Exists(path string) bool {
	return m.existingFiles[path]
}

func contains(s, substr string) bool {
	for i := 0; i <= len(s)-len(substr); i++ {
		if s[i:i+len(substr)] == substr {
			return true
		}
	}
	return false
}
