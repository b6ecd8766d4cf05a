package audit

import "context"

type AuditService interface {
	// Run sends the full current collections to the AI collaborator and
	// returns its structured findings.
	Run(ctx context.Context) (Result, error)

	// Duplicates scans attendance for repeated (employee, date, project)
	// entries without involving the AI collaborator.
	Duplicates(ctx context.Context) ([]DuplicateGroup, error)
}
