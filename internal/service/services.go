package service

import (
	"github.com/avolkov/jobscout/internal/adapter"
	"github.com/avolkov/jobscout/internal/logger"
	"github.com/avolkov/jobscout/internal/store"
)

type ClientServices struct {
	Session         SessionService
	Profile         ProfileService
	Catalog         CatalogService
	Recommendations RecommendationService
	RefreshJob      CatalogRefreshJob
}

func NewClientServices(storages *store.ClientStorages, apiClient adapter.APIClient, log *logger.Logger) *ClientServices {
	session := NewSessionService(storages.Credentials, apiClient, log)
	profile := NewProfileService(apiClient, session, log)
	catalog := NewCatalogService(apiClient, storages.JobCache, session, log)
	recommendations := NewRecommendationService(apiClient, session, log)

	// The session delegates UpdateProfile to the profile service, which in
	// turn uses the session as its credential source; the loop is closed
	// here after both exist.
	session.(*sessionService).profile = profile

	return &ClientServices{
		Session:         session,
		Profile:         profile,
		Catalog:         catalog,
		Recommendations: recommendations,
		RefreshJob:      NewCatalogRefreshJob(catalog, session),
	}
}
