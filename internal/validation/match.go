package validation

import (
	"context"
	"fmt"

	"github.com/deppfellow/grubdash/internal/chain"
	"github.com/deppfellow/grubdash/internal/errs"
	"github.com/deppfellow/grubdash/internal/model"
)

// IDMatchesRoute fails when the body carries an id that differs from the
// loaded record's. Omitting the id is allowed.
func IDMatchesRoute[T model.Record](resource string) chain.Stage[T] {
	return chain.Step("idMatches", func(ctx context.Context, st *chain.State[T]) error {
		record, ok := st.Record()
		if !ok {
			return errs.NewInternalServerError()
		}

		bodyID := st.Payload.Value("id")
		if !Present(bodyID) {
			return nil
		}
		if id, ok := bodyID.(string); ok && id == record.GetID() {
			return nil
		}

		return errs.NewBadRequestError(fmt.Sprintf(
			"%s id does not match route id. %s: %v, Route: %s",
			resource, resource, bodyID, record.GetID(),
		))
	})
}
