package audit

import "errors"

// ErrAuditFailed covers every failure of the external audit call. The
// caller gets a generic notice and may simply re-trigger; there are no
// retries and no partial results.
var ErrAuditFailed = errors.New("audit failed")
