package api

import (
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/RMahshie/hornlab/internal/api/handlers"
	"github.com/RMahshie/hornlab/internal/processing"
	"github.com/RMahshie/hornlab/internal/repository"
	"github.com/RMahshie/hornlab/internal/storage"
)

// RegisterRoutes sets up all API routes
func RegisterRoutes(api huma.API, designRepo repository.DesignRepository, store storage.ProfileStore, simulationSvc processing.SimulationService) {
	// Initialize handlers
	designHandler := handlers.NewDesignHandler(designRepo, store, simulationSvc)

	// Register design routes
	huma.Register(api, huma.Operation{
		OperationID:   "createDesign",
		Method:        http.MethodPost,
		Path:          "/api/designs",
		Summary:       "Create a new design",
		Description:   "Synthesizes a horn expansion profile and stores it as a pending design",
		Tags:          []string{"Designs"},
		DefaultStatus: http.StatusCreated,
	}, designHandler.CreateDesign)

	huma.Register(api, huma.Operation{
		OperationID: "getDesign",
		Method:      http.MethodGet,
		Path:        "/api/designs/{id}",
		Summary:     "Get design status",
		Description: "Returns the synthesis parameters, metadata and simulation progress of a design",
		Tags:        []string{"Designs"},
	}, designHandler.GetDesign)

	huma.Register(api, huma.Operation{
		OperationID: "getDesignProfile",
		Method:      http.MethodGet,
		Path:        "/api/designs/{id}/profile",
		Summary:     "Get design profile",
		Description: "Returns the stored expansion profile and a pre-signed download URL",
		Tags:        []string{"Designs"},
	}, designHandler.GetDesignProfile)

	huma.Register(api, huma.Operation{
		OperationID:   "startSimulation",
		Method:        http.MethodPost,
		Path:          "/api/designs/{id}/simulate",
		Summary:       "Start simulation",
		Description:   "Starts the fractal analysis and acoustic simulation of a design",
		Tags:          []string{"Designs"},
		DefaultStatus: http.StatusAccepted,
	}, designHandler.StartSimulation)

	huma.Register(api, huma.Operation{
		OperationID: "getResults",
		Method:      http.MethodGet,
		Path:        "/api/designs/{id}/results",
		Summary:     "Get simulation results",
		Description: "Returns impedance, frequency response, directivity, fractal metrics and score",
		Tags:        []string{"Designs"},
	}, designHandler.GetResults)

	// Register comparison routes
	huma.Register(api, huma.Operation{
		OperationID:   "createComparison",
		Method:        http.MethodPost,
		Path:          "/api/comparisons",
		Summary:       "Compare designs",
		Description:   "Ranks two to five designs by impedance smoothness and reflection",
		Tags:          []string{"Comparisons"},
		DefaultStatus: http.StatusCreated,
	}, designHandler.CreateComparison)

	huma.Register(api, huma.Operation{
		OperationID: "getComparison",
		Method:      http.MethodGet,
		Path:        "/api/comparisons/{id}",
		Summary:     "Get comparison",
		Description: "Returns a stored comparison",
		Tags:        []string{"Comparisons"},
	}, designHandler.GetComparison)
}
