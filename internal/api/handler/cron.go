package handler

import (
	"net/http"

	jsoniter "github.com/json-iterator/go"
	"github.com/julienschmidt/httprouter"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/cogs-reconciler-api/infrastructure/repository"
	"github.com/vfg2006/cogs-reconciler-api/internal/scheduler"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// CronJobType define o tipo de cron job que será executada
const (
	CronJobTypeCogs = "cogs"
)

// CronJobServices contém os serviços de cron necessários para executar manualmente
type CronJobServices struct {
	CogsSyncService *scheduler.CogsSyncService
	RunRepository   repository.RunRepository
}

// RunCronJob executa manualmente uma cron job específica
func RunCronJob(services CronJobServices) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - RunCronJob")

		// Obter o tipo de cron job da URL
		cronType := httprouter.ParamsFromContext(r.Context()).ByName("type")

		switch cronType {
		case CronJobTypeCogs:
			if services.CogsSyncService == nil {
				writeError(w, http.StatusInternalServerError, "Serviço de reconciliação de COGS não disponível")
				return
			}
			services.CogsSyncService.TriggerManualSync()

		default:
			writeError(w, http.StatusBadRequest, "Tipo de cron job inválido. Valores aceitos: cogs")
			return
		}

		response := map[string]any{
			"message": "Cron job iniciada com sucesso",
			"type":    cronType,
		}
		if err := json.NewEncoder(w).Encode(response); err != nil {
			logrus.WithError(err).Warn("Erro ao serializar resposta da cron job")
		}
	}
}

// GetCronStatus retorna o status das cron jobs
func GetCronStatus(services CronJobServices) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - GetCronStatus")

		status := map[string]any{
			"cogs": services.CogsSyncService.GetStatus(),
		}

		// O histórico persistido sobrevive a reinícios do processo, ao
		// contrário do estado em memória do agendador.
		if services.RunRepository != nil {
			lastRun, err := services.RunRepository.LastRun()
			switch {
			case err != nil:
				logrus.WithError(err).Warn("Erro ao ler a última execução persistida")
			case lastRun != nil:
				status["last_persisted_run"] = map[string]any{
					"run_id":       lastRun.RunID,
					"started_at":   lastRun.StartedAt,
					"finished_at":  lastRun.FinishedAt,
					"status":       string(lastRun.Status),
					"journal_docs": lastRun.JournalDocs,
					"total_amount": lastRun.TotalAmount,
				}
			}
		}

		if err := json.NewEncoder(w).Encode(status); err != nil {
			logrus.WithError(err).Warn("Erro ao serializar status das cron jobs")
		}
	}
}

func writeError(w http.ResponseWriter, statusCode int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)

	if err := json.NewEncoder(w).Encode(map[string]any{"error": message}); err != nil {
		logrus.WithError(err).Warn("Erro ao serializar resposta de erro")
	}
}
