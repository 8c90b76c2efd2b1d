package cmd

import (
	"context"
	"errors"
	"fmt"
	"landledger/internal/config"
	"landledger/internal/core"
	"landledger/internal/db"
	"landledger/internal/http/handler"
	"landledger/internal/http/handler/middleware"
	"landledger/internal/http/payload"
	"landledger/internal/http/server"
	"landledger/internal/repository"
	"landledger/pkg/jwt"
	"landledger/pkg/log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/ethereum/go-ethereum/common"
	"go.uber.org/zap/zapcore"
	"golang.org/x/crypto/bcrypt"
)

func Start() error {
	logger := log.NewZapLogger("landledger", zapcore.InfoLevel)

	config, err := config.NewApp()
	if err != nil {
		logger.Errorw("failed to create config", "error", err)
		return err
	}

	dbConn, err := db.NewPostgresDB(config.DBConnectionURL)
	if err != nil {
		logger.Errorw("failed to connect to database", "error", err)
		return err
	}

	// jwt service
	jwtService := jwt.NewJWTService([]byte(config.JWTSecret))

	// repository
	repo := repository.NewLedgerRepository(dbConn)

	if err := repo.Migrate(); err != nil {
		logger.Errorw("failed to migrate tables to database", "error", err)
		return err
	}

	if !common.IsHexAddress(config.DeployerAddress) {
		err := errors.New("deployer address is not a valid hex address")
		logger.Errorw("failed to seed deployer account", "error", err)
		return err
	}
	deployerAddr := common.HexToAddress(config.DeployerAddress).Hex()

	passphraseHash, err := bcrypt.GenerateFromPassword([]byte(config.DeployerPassphrase), bcrypt.DefaultCost)
	if err != nil {
		logger.Errorw("failed to hash deployer passphrase", "error", err)
		return err
	}

	err = repo.EnsureDeployer(
		context.Background(),
		deployerAddr,
		int(core.DesignationDeployer),
		string(passphraseHash))
	if err != nil {
		logger.Errorw("failed to seed deployer account", "error", err)
		return err
	}

	// ledger
	ledger := core.NewLedger(logger, repo, jwtService)

	// handlers
	registryHlr := handler.NewRegistryHandler(
		logger,
		payload.DecodeValidator{},
		ledger,
		ledger,
		config.OpTimeout)
	landHlr := handler.NewLandHandler(
		logger,
		payload.DecodeValidator{},
		ledger,
		ledger,
		config.OpTimeout)
	tradeHlr := handler.NewTradeHandler(
		logger,
		payload.DecodeValidator{},
		ledger,
		ledger,
		config.OpTimeout)

	// middleware
	mux := http.NewServeMux()
	hdlr := middleware.NewLoggingMiddleware(logger).Logging(mux)
	hdlr = middleware.NewRequestIDMiddleware().RequestID(hdlr)

	// register routes
	mux.HandleFunc(handler.Authenticate, registryHlr.HandleAuthenticate)
	mux.HandleFunc(handler.RegisterAccount, registryHlr.HandleRegisterAccount)
	mux.HandleFunc(handler.AddInspector, registryHlr.HandleAddInspector)
	mux.HandleFunc(handler.AddAuthority, registryHlr.HandleAddAuthority)
	mux.HandleFunc(handler.GrantInspector, registryHlr.HandleGrantInspector)
	mux.HandleFunc(handler.RevokeInspector, registryHlr.HandleRevokeInspector)
	mux.HandleFunc(handler.RemoveInspector, registryHlr.HandleRemoveInspector)
	mux.HandleFunc(handler.GrantAuthority, registryHlr.HandleGrantAuthority)
	mux.HandleFunc(handler.RevokeAuthority, registryHlr.HandleRevokeAuthority)
	mux.HandleFunc(handler.RemoveAuthority, registryHlr.HandleRemoveAuthority)
	mux.HandleFunc(handler.VerifyAccount, registryHlr.HandleVerifyAccount)
	mux.HandleFunc(handler.RequestVerification, registryHlr.HandleRequestVerification)
	mux.HandleFunc(handler.PendingVerifications, registryHlr.HandlePendingVerifications)
	mux.HandleFunc(handler.GetAccount, registryHlr.HandleGetAccount)

	mux.HandleFunc(handler.AddLand, landHlr.HandleAddLand)
	mux.HandleFunc(handler.GetAllLands, landHlr.HandleGetAllLands)
	mux.HandleFunc(handler.GetLand, landHlr.HandleGetLand)
	mux.HandleFunc(handler.GetLandIdentity, landHlr.HandleGetLandID)
	mux.HandleFunc(handler.GetLandsForSale, landHlr.HandleGetLandsForSale)
	mux.HandleFunc(handler.GetMyLands, landHlr.HandleGetMyLands)
	mux.HandleFunc(handler.RequestLandVerify, landHlr.HandleRequestLandVerification)
	mux.HandleFunc(handler.PendingLandVerify, landHlr.HandlePendingLandVerifications)
	mux.HandleFunc(handler.VerifyLand, landHlr.HandleVerifyLand)
	mux.HandleFunc(handler.ListForSale, landHlr.HandleListForSale)
	mux.HandleFunc(handler.GetLandPreviousOwners, landHlr.HandleGetPreviousOwners)

	mux.HandleFunc(handler.CreateBuyRequest, tradeHlr.HandleCreateBuyRequest)
	mux.HandleFunc(handler.CancelBuyRequest, tradeHlr.HandleCancelBuyRequest)
	mux.HandleFunc(handler.AcceptBuyRequest, tradeHlr.HandleAcceptRequest)
	mux.HandleFunc(handler.RejectBuyRequest, tradeHlr.HandleRejectRequest)
	mux.HandleFunc(handler.MarkPaymentDone, tradeHlr.HandleMarkPaymentDone)
	mux.HandleFunc(handler.TransferOwnership, tradeHlr.HandleTransferOwnership)
	mux.HandleFunc(handler.GetBuyRequest, tradeHlr.HandleGetBuyRequest)
	mux.HandleFunc(handler.GetRequestBuyer, tradeHlr.HandleGetRequestBuyer)
	mux.HandleFunc(handler.GetRequestLand, tradeHlr.HandleGetRequestLand)
	mux.HandleFunc(handler.GetLandRequests, tradeHlr.HandleGetLandRequests)
	mux.HandleFunc(handler.SentRequests, tradeHlr.HandleSentRequests)
	mux.HandleFunc(handler.ReceivedRequests, tradeHlr.HandleReceivedRequests)
	mux.HandleFunc(handler.PendingTransfers, tradeHlr.HandlePendingTransfers)

	srv := server.NewHTTP(logger, hdlr, config.Port)
	return run(srv)
}

func run(server *server.HTTPServer) error {
	// expect a signal to gracefully shutdown the server
	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	errChan := server.Run()

	var err error
	select {
	case <-sig:
	case err = <-errChan:
	}

	sdErr := server.Shutdown()
	if err == http.ErrServerClosed && sdErr != nil {
		return fmt.Errorf("server shutdown: %w", sdErr)
	}

	return err
}
