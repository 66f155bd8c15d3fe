package routes

import (
	"net/http"

	"github.com/gorilla/mux"

	"owbridge/internal/controller"
)

// NewRouter registers the report surface. Anything outside the
// registered routes, including wrong methods on them, gets an
// empty-body 404.
func NewRouter(c *controller.ReportController) *mux.Router {
	router := mux.NewRouter()

	router.HandleFunc("/details.xml", c.HandleDetails).Methods(http.MethodGet)

	router.NotFoundHandler = http.HandlerFunc(notFound)
	router.MethodNotAllowedHandler = http.HandlerFunc(notFound)

	return router
}

func notFound(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusNotFound)
}
