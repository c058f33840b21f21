package domain

func ptrString(s string) *string { return &s }
