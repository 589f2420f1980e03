package reconciling

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/cogs-reconciler-api/infrastructure/integrator/quickbooks"
	"github.com/vfg2006/cogs-reconciler-api/infrastructure/integrator/sellercloud"
	"github.com/vfg2006/cogs-reconciler-api/infrastructure/repository"
	"github.com/vfg2006/cogs-reconciler-api/internal/config"
	"github.com/vfg2006/cogs-reconciler-api/internal/domain"
	"github.com/vfg2006/cogs-reconciler-api/internal/notifier"
	"github.com/vfg2006/cogs-reconciler-api/internal/report"
	"github.com/vfg2006/cogs-reconciler-api/pkg/log"
	"github.com/vfg2006/cogs-reconciler-api/pkg/utils"
)

// Reconciler executa uma rodada completa de reconciliação de COGS: busca os
// pedidos de cada canal, agrega custos, gera os relatórios e lança no
// QuickBooks.
type Reconciler interface {
	Run(ctx context.Context) (*domain.RunSummary, error)
}

type Service struct {
	cfg          *config.Config
	sellerCloud  sellercloud.SellerCloudIntegrator
	quickBooks   quickbooks.QuickBooksIntegrator
	tokenRepo    repository.RefreshTokenRepository
	runRepo      repository.RunRepository
	reportWriter report.Writer
	notifier     notifier.Notifier

	// now é injetável para os testes controlarem a data de referência.
	now func() time.Time
}

func NewService(
	cfg *config.Config,
	sellerCloud sellercloud.SellerCloudIntegrator,
	quickBooks quickbooks.QuickBooksIntegrator,
	tokenRepo repository.RefreshTokenRepository,
	runRepo repository.RunRepository,
	reportWriter report.Writer,
	alerts notifier.Notifier,
) *Service {
	return &Service{
		cfg:          cfg,
		sellerCloud:  sellerCloud,
		quickBooks:   quickBooks,
		tokenRepo:    tokenRepo,
		runRepo:      runRepo,
		reportWriter: reportWriter,
		notifier:     alerts,
		now:          time.Now,
	}
}

// Run processa os canais habilitados em sequência: um canal é buscado,
// agregado, reportado e lançado por inteiro antes do próximo começar. Falha
// na busca de um canal apenas o exclui da rodada; falha na API contábil de um
// canal não derruba os irmãos.
func (s *Service) Run(ctx context.Context) (*domain.RunSummary, error) {
	runID, err := utils.GenerateID()
	if err != nil {
		return nil, fmt.Errorf("erro ao gerar o id da execução: %w", err)
	}

	logger := log.ForContext(ctx).WithField("run_id", runID)

	summary := &domain.RunSummary{
		RunID:     runID,
		StartedAt: s.now(),
		Status:    domain.RunStatusFailed,
	}

	// A referência é sempre o dia anterior à execução.
	reference := s.now().AddDate(0, 0, -1)

	rng, err := domain.ComputeRange(reference, domain.Frequency(s.cfg.CogsSync.Frequency))
	if err != nil {
		return nil, err
	}

	logger.WithFields(log.Fields{
		"from":      rng.QueryStart(),
		"to":        rng.QueryEnd(),
		"frequency": s.cfg.CogsSync.Frequency,
	}).Info("Período da reconciliação calculado")

	results := s.collectChannelResults(rng, reference, logger)

	if len(results) == 0 {
		logger.Warn("Nenhum canal retornou vendas no período")
		s.alert("No journal created", "There was no sales data to create journal with.")

		summary.Status = domain.RunStatusNoData
		summary.FinishedAt = s.now()
		s.saveRun(summary, logger)
		return summary, nil
	}

	if err := s.authenticateAccounting(logger); err != nil {
		summary.FinishedAt = s.now()
		s.saveRun(summary, logger)
		return summary, err
	}

	grandTotal := decimal.Zero
	for _, result := range results {
		grandTotal = grandTotal.Add(result.Total)
	}

	if s.cfg.CogsSync.RunIndividual {
		summary.JournalDocs = append(summary.JournalDocs, s.postIndividualEntries(results, rng, logger)...)
	}

	if s.cfg.CogsSync.RunCombined {
		if doc := s.postCombinedEntry(results, rng, logger); doc != "" {
			summary.JournalDocs = append(summary.JournalDocs, doc)
		}
	}

	if len(summary.JournalDocs) > 0 {
		s.alert(
			"Journal Entries Created",
			fmt.Sprintf("Journal entries created: %s", strings.Join(summary.JournalDocs, ", ")),
		)
	}

	summary.Status = domain.RunStatusSucceeded
	summary.FinishedAt = s.now()
	summary.TotalAmount = grandTotal.StringFixed(2)
	s.saveRun(summary, logger)

	logger.WithFields(log.Fields{
		"journal_docs": summary.JournalDocs,
		"total":        summary.TotalAmount,
		"duration":     summary.FinishedAt.Sub(summary.StartedAt).String(),
	}).Info("Reconciliação de COGS concluída")

	return summary, nil
}

// collectChannelResults busca e agrega os pedidos de cada canal habilitado.
// A ausência de resultado de um canal (falha de busca já alertada pela camada
// HTTP) apenas o deixa fora da rodada.
func (s *Service) collectChannelResults(rng domain.DateRange, reference time.Time, logger log.Logger) []domain.ChannelResult {
	results := make([]domain.ChannelResult, 0, len(s.cfg.Channels))

	for _, channel := range s.cfg.Channels {
		if !channel.Enabled {
			logger.WithField("channel", channel.Code).Info("Canal desabilitado por configuração, pulando")
			continue
		}

		orders, err := s.sellerCloud.GetOrdersByChannel(rng, channel)
		if err != nil {
			logger.WithError(err).WithField("channel", channel.Code).Error("Erro ao buscar pedidos do canal")
			continue
		}

		if len(orders) == 0 {
			logger.WithField("channel", channel.Code).Info("Canal sem pedidos no período")
			continue
		}

		total, rows := Aggregate(orders)

		reportPath, err := s.reportWriter.WriteChannelReport(rows, channel.Name, reference)
		if err != nil {
			logger.WithError(err).WithField("channel", channel.Code).Error("Erro ao gerar relatório do canal")
			continue
		}

		logger.WithFields(log.Fields{
			"channel": channel.Code,
			"orders":  len(orders),
			"amount":  total.StringFixed(2),
		}).Info("Canal processado")

		results = append(results, domain.ChannelResult{
			Channel:    channel.Code,
			Total:      total,
			Rows:       rows,
			ReportPath: reportPath,
			OrderCount: len(orders),
		})
	}

	return results
}

// authenticateAccounting lê o refresh token persistido, cunha o access token
// e regrava o refresh token quando a Intuit o rotaciona.
func (s *Service) authenticateAccounting(logger log.Logger) error {
	currentToken, err := s.tokenRepo.Latest()
	if err != nil {
		return fmt.Errorf("erro ao ler refresh token persistido: %w", err)
	}

	rotatedToken, err := s.quickBooks.Authenticate(currentToken)
	if err != nil {
		return err
	}

	if rotatedToken != "" && rotatedToken != currentToken {
		if err := s.tokenRepo.Save(rotatedToken); err != nil {
			// A execução continua: o access token já foi cunhado; só a
			// próxima rodada sente a falta do token rotacionado.
			logger.WithError(err).Error("Erro ao persistir refresh token rotacionado")
		} else {
			logger.Info("Refresh token rotacionado e persistido")
		}
	}

	return nil
}

func (s *Service) postIndividualEntries(results []domain.ChannelResult, rng domain.DateRange, logger log.Logger) []string {
	channelsByCode := s.channelsByCode()
	docs := make([]string, 0, len(results))

	for _, result := range results {
		if !result.Total.IsPositive() {
			logger.WithField("channel", result.Channel).Info("Canal sem custo positivo, lançamento ignorado")
			continue
		}

		channel := channelsByCode[result.Channel]

		docNumber, err := s.quickBooks.CreateChannelEntry(channel, result.Total, rng.End)
		if err != nil {
			logger.WithError(err).WithField("channel", result.Channel).Error("Erro ao criar lançamento do canal")
			continue
		}

		entryID, err := s.quickBooks.FindJournalEntryID(docNumber)
		if err != nil || entryID == "" {
			logger.WithError(err).WithFields(log.Fields{
				"channel":    result.Channel,
				"doc_number": docNumber,
			}).Error("Erro ao localizar lançamento recém-criado")
			continue
		}

		if err := s.quickBooks.AttachReport(result.ReportPath, entryID); err != nil {
			logger.WithError(err).WithFields(log.Fields{
				"channel":    result.Channel,
				"doc_number": docNumber,
			}).Error("Erro ao anexar relatório ao lançamento")
			continue
		}

		logger.WithFields(log.Fields{
			"channel":    result.Channel,
			"doc_number": docNumber,
		}).Info("Lançamento individual criado com relatório anexado")

		docs = append(docs, docNumber)
	}

	return docs
}

func (s *Service) postCombinedEntry(results []domain.ChannelResult, rng domain.DateRange, logger log.Logger) string {
	docNumber, err := s.quickBooks.CreateCombinedEntry(results, s.channelsByCode(), rng.End)
	if err != nil {
		logger.WithError(err).Error("Erro ao criar lançamento combinado")
		return ""
	}

	entryID, err := s.quickBooks.FindJournalEntryID(docNumber)
	if err != nil || entryID == "" {
		logger.WithError(err).WithField("doc_number", docNumber).Error("Erro ao localizar lançamento combinado")
		return docNumber
	}

	for _, result := range results {
		if err := s.quickBooks.AttachReport(result.ReportPath, entryID); err != nil {
			logger.WithError(err).WithFields(log.Fields{
				"channel":    result.Channel,
				"doc_number": docNumber,
			}).Error("Erro ao anexar relatório ao lançamento combinado")
		}
	}

	logger.WithField("doc_number", docNumber).Info("Lançamento combinado criado")
	return docNumber
}

func (s *Service) channelsByCode() map[string]config.Channel {
	byCode := make(map[string]config.Channel, len(s.cfg.Channels))
	for _, channel := range s.cfg.Channels {
		byCode[channel.Code] = channel
	}
	return byCode
}

func (s *Service) saveRun(summary *domain.RunSummary, logger log.Logger) {
	if err := s.runRepo.Save(summary); err != nil {
		logger.WithError(err).Error("Erro ao gravar histórico da execução")
	}
}

func (s *Service) alert(subject, body string) {
	if err := s.notifier.Alert(subject, body); err != nil {
		logrus.WithError(err).Warn("Erro ao enviar alerta por e-mail")
	}
}
