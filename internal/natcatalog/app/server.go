package app

import (
	"io"
	"net/http"
	"time"

	"natcatalog_api/config"
	"natcatalog_api/internal/moysklad/pkg/clients"
	"natcatalog_api/internal/natcatalog/app/web"
	"natcatalog_api/internal/natcatalog/app/web/handlers"
	"natcatalog_api/internal/natcatalog/business/services"
	"natcatalog_api/internal/natcatalog/business/services/builder"
	"natcatalog_api/internal/natcatalog/business/services/get"
	"natcatalog_api/internal/natcatalog/business/services/parse"
	"natcatalog_api/internal/natcatalog/business/services/update"
	"natcatalog_api/pkg/business/service"
	"natcatalog_api/pkg/logger"
)

type NatCatalogServer struct {
	config  *config.AppConfig
	secrets *config.Secrets
	log     logger.Logger
	writer  io.Writer
}

func NewServer(cfg *config.AppConfig, secrets *config.Secrets, writer io.Writer) *NatCatalogServer {
	return &NatCatalogServer{
		config:  cfg,
		secrets: secrets,
		log:     logger.NewLogger(writer, "[NatCatalogServer]"),
		writer:  writer,
	}
}

// Run собирает все сервисы и поднимает HTTP-интерфейс. Таблица соответствия
// ТН ВЭД обязана присутствовать, без неё сервис не стартует.
func (s *NatCatalogServer) Run() error {
	mapping, err := parse.LoadMapping(s.config.NatCatalog.MappingFile)
	if err != nil {
		s.log.FatalLog("таблица соответствия ТН ВЭД: %v", err)
	}

	catalogValues := s.config.NatCatalog.CatalogValues
	textService := service.NewTextService()

	authEngine := services.AuthEngine(services.NewApiKeyAuth(s.secrets.CatalogAPIKey))
	attributes := get.NewAttributesEngine(s.config.NatCatalog.BaseURL, authEngine)
	categories := get.NewCategoriesEngine(s.config.NatCatalog.BaseURL, authEngine)
	vocabulary := get.NewVocabularyService(attributes, textService, s.writer)

	resolver := parse.NewCategoryResolver(mapping, textService, catalogValues, s.writer)
	extractor := parse.NewExtractor(catalogValues, resolver, vocabulary, categories, s.writer)

	assortment := clients.NewAssortmentClient(
		s.config.MoySklad.BaseURL,
		s.secrets.MoySkladToken,
		s.config.MoySklad.PageLimit,
		time.Duration(s.config.MoySklad.Timeout)*time.Second,
		s.writer,
	)

	catalog := update.NewCatalogService(assortment, extractor, catalogValues.Attributes.NationalCatalog, s.log)
	cardBuilder := builder.NewCardBuilder(catalogValues, textService, resolver, categories)
	feed := update.NewFeedService(s.config.NatCatalog.BaseURL, authEngine, s.log)

	handler := web.SetupRoutes(
		handlers.NewProductHandler(catalog, cardBuilder, feed, categories, s.log),
		handlers.NewFeedHandler(feed, s.log),
		handlers.NewHealthHandler(assortment, s.log),
		s.secrets.JWTSecret,
	)

	s.log.Log("сервис нац. каталога запущен на %s", s.config.ListenAddr)
	return http.ListenAndServe(s.config.ListenAddr, handler)
}
