package cookie

import (
	"net/http"

	"github.com/cccteam/ccc"
)

var _ Handler = &Client{}

// Handler Interface included for testability
type Handler interface {
	ReadAuthCookie(r *http.Request) (sessionID ccc.UUID, found bool)
	WriteReturnURL(w http.ResponseWriter, returnURL string) error
	ReadReturnURL(r *http.Request) (returnURL string, found bool)
	ClearReturnURL(w http.ResponseWriter)
}
