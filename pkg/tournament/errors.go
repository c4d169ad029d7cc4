package tournament

import "github.com/matzehuels/bracket/pkg/errors"

func errRoundNotFound(id NodeID) error {
	return errors.New(errors.ErrCodeRoundNotFound, "node %d not found", int(id))
}

func errEntrantNotFound(id EntrantID) error {
	return errors.New(errors.ErrCodeEntrantNotFound, "%s not found", id)
}

func errNotARound(id NodeID) error {
	return errors.New(errors.ErrCodeInternal, "node %d is an entrant, not a round", int(id))
}
