package routes

import (
	"github.com/gorilla/mux"
	"github.com/sirupsen/logrus"

	"github.com/NoSuchObjectException/4610-final-project/controllers"
	"github.com/NoSuchObjectException/4610-final-project/services"
	"github.com/NoSuchObjectException/4610-final-project/storage"
)

func Routes(router *mux.Router, store storage.Store, log *logrus.Logger) {
	agentService := services.NewAgentService(store, log)
	clientService := services.NewClientService(store, log)

	// Agent operations use the path convention: the trailing segment
	// names the operation.
	router.PathPrefix("/agent/").Handler(controllers.AgentHandler(agentService, log)).
		Methods("POST", "OPTIONS")

	// Client operations use the action convention: one endpoint, the
	// payload carries the action.
	router.HandleFunc("/client", controllers.ClientHandler(clientService, log)).
		Methods("POST", "OPTIONS")
}
