package main

import (
	"context"
	"log/slog"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"

	"github.com/oyaguma3/roaming-admin/apps/admin-tui/internal/api"
	"github.com/oyaguma3/roaming-admin/apps/admin-tui/internal/audit"
	"github.com/oyaguma3/roaming-admin/apps/admin-tui/internal/config"
	"github.com/oyaguma3/roaming-admin/apps/admin-tui/internal/countrydata"
	"github.com/oyaguma3/roaming-admin/apps/admin-tui/internal/exporter"
	"github.com/oyaguma3/roaming-admin/apps/admin-tui/internal/session"
	"github.com/oyaguma3/roaming-admin/apps/admin-tui/internal/ui"
	"github.com/oyaguma3/roaming-admin/apps/admin-tui/internal/ui/country"
	"github.com/oyaguma3/roaming-admin/apps/admin-tui/internal/ui/export"
	"github.com/oyaguma3/roaming-admin/apps/admin-tui/internal/ui/login"
	"github.com/oyaguma3/roaming-admin/apps/admin-tui/internal/ui/opcotariff"
	"github.com/oyaguma3/roaming-admin/apps/admin-tui/internal/ui/partner"
	"github.com/oyaguma3/roaming-admin/apps/admin-tui/internal/ui/tariff"
	"github.com/oyaguma3/roaming-admin/pkg/logging"
	"github.com/oyaguma3/roaming-admin/pkg/model"
)

// ページ名
const (
	pageStartupError = "startup-error"
	pageLogin        = "login"
	pageDashboard    = "dashboard"
	pagePartners     = "partner-list"
	pagePartnerForm  = "partner-form"
	pagePartnerView  = "partner-view"
	pageCountries    = "country-list"
	pageCountryForm  = "country-form"
	pageTariffs      = "tariff-list"
	pageTariffForm   = "tariff-form"
	pageOpcoTariffs  = "opco-tariff-list"
	pageOpcoForm     = "opco-tariff-form"
	pageExport       = "export"
	pageHelp         = "help"
)

// Application はアプリケーション全体を管理する。
type Application struct {
	app         *ui.App
	cfg         *config.Config
	auditLogger *audit.Logger
	fields      *logging.CommonFields
	static      []countrydata.Entry

	sessions   *session.Context
	client     *api.Client
	closeStore func()

	partners    *partner.ListScreen
	countries   *country.ListScreen
	tariffs     *tariff.ListScreen
	opcoTariffs *opcotariff.ListScreen
}

func newApplication(cfg *config.Config, auditLogger *audit.Logger) *Application {
	return &Application{
		app:         ui.NewApp(),
		cfg:         cfg,
		auditLogger: auditLogger,
		fields:      logging.NewCommonFields(logging.NewMasker(cfg.LogMask)),
		static:      countrydata.Default().Entries(),
		closeStore:  func() {},
	}
}

// Run は接続を確立して画面を表示し、終了までブロックする。
func (a *Application) Run() error {
	slog.Info("admin-tui started",
		logging.WithEventID("APP_START"),
		slog.String("api_url", a.cfg.APIURL),
		slog.String("session_store", a.cfg.SessionStore),
	)
	a.setupGlobalKeyBindings()

	if err := a.connect(); err != nil {
		a.showStartupError(err)
	} else {
		a.start()
	}
	return a.app.Run()
}

// connect はセッション保存先に接続し、APIクライアントと一覧画面を生成する。
func (a *Application) connect() error {
	store, closeStore, err := openSessionStore(a.cfg)
	if err != nil {
		return err
	}
	a.closeStore = closeStore
	a.sessions = session.NewContext(store, a.cfg.SessionTTL)
	a.client = api.NewClient(a.cfg, a.sessions)

	a.partners = partner.NewListScreen(a.app, a.client, a.auditLogger, a.cfg.PageSize)
	a.countries = country.NewListScreen(a.app, a.client, a.auditLogger, a.static, config.CountryPageSize)
	a.tariffs = tariff.NewListScreen(a.app, a.client, a.auditLogger, a.cfg.PageSize)
	a.opcoTariffs = opcotariff.NewListScreen(a.app, a.client, a.auditLogger, a.cfg.PageSize)
	a.wireLists()
	return nil
}

// start は保存済みセッションを復元できればダッシュボード、できなければログイン画面を表示する。
func (a *Application) start() {
	ctx, cancel := context.WithTimeout(context.Background(), config.LoginTimeout)
	defer cancel()

	ok, err := a.sessions.Restore(ctx)
	if err != nil {
		slog.Warn("session restore failed",
			logging.WithEventID("SESSION_RESTORE_ERR"),
			logging.WithError(err),
		)
	}
	if ok {
		a.auditLogger.SetAdminUser(a.sessions.UserName())
		slog.Info("session restored",
			logging.WithEventID("SESSION_RESTORED"),
			a.fields.WithUser(a.sessions.UserName()),
		)
		a.showDashboard()
		return
	}
	a.showLogin()
}

func (a *Application) showStartupError(err error) {
	screen := ui.NewStartupErrorScreen(
		"Valkey",
		err.Error(),
		[]string{
			"Valkey is running at " + a.cfg.ValkeyAddr,
			"VALKEY_PASSWORD is correct",
			"or set SESSION_STORE=memory",
		},
		func() {
			if err := a.connect(); err != nil {
				a.app.GetStatusBar().ShowError("Connection failed: " + err.Error())
				return
			}
			a.app.RemovePage(pageStartupError)
			a.start()
		},
		a.quit,
	)
	a.app.AddPage(pageStartupError, screen.GetModal(), true, true)
}

func (a *Application) showLogin() {
	screen := login.NewScreen(a.app, a.client, a.sessions, a.auditLogger, a.fields)
	screen.SetOnSuccess(func(_ *session.Session) {
		a.app.RemovePage(pageLogin)
		a.showDashboard()
	})
	screen.SetOnQuit(a.quit)

	a.app.SetUser("")
	a.app.AddPage(pageLogin, ui.Centered(screen.GetForm(), 56, 9), true, true)
	a.app.SwitchToPage(pageLogin)
	a.app.SetFocus(screen.GetForm())
}

func (a *Application) showDashboard() {
	a.app.SetUser(a.sessions.UserName())

	tabs := ui.DefaultTabs()
	tabs[ui.TabOpcos].Action = func() { a.showList(pageCountries, a.countries.GetTable(), a.countries.Reload) }
	tabs[ui.TabPartners].Action = func() { a.showList(pagePartners, a.partners.GetTable(), a.partners.Reload) }
	tabs[ui.TabPartnerTariffs].Action = func() { a.showList(pageTariffs, a.tariffs.GetTable(), a.tariffs.Reload) }
	tabs[ui.TabOpcoTariffs].Action = func() { a.showList(pageOpcoTariffs, a.opcoTariffs.GetTable(), a.opcoTariffs.Reload) }
	tabs[ui.TabExport].Action = a.showExport
	tabs[ui.TabLogout].Action = a.logout

	dashboard := ui.NewDashboard(tabs)
	dashboard.SetOnQuit(a.quit)

	a.app.AddPage(pageDashboard, dashboard.GetList(), true, true)
	a.app.SwitchToPage(pageDashboard)
	a.app.SetFocus(dashboard.GetList())
}

func (a *Application) backToDashboard() {
	a.app.SwitchToPage(pageDashboard)
}

// showList は一覧画面を表示し、バックグラウンドで再取得する。
func (a *Application) showList(page string, table *tview.Table, reload func()) {
	if !a.app.HasPage(page) {
		a.app.AddPage(page, table, true, false)
	}
	a.app.SwitchToPage(page)
	a.app.SetFocus(table)
	reload()
}

// wireLists は一覧画面の操作を各フォームへの遷移に接続する。
func (a *Application) wireLists() {
	partners := a.partners.List()
	partners.SetOnBack(a.backToDashboard)
	partners.SetOnCreate(func() { a.showPartnerForm(0) })
	partners.SetOnEdit(func(row model.MergedPartner) { a.showPartnerForm(row.ID) })
	partners.SetOnView(func(row model.MergedPartner) { a.showPartnerView(row.ID) })

	countries := a.countries.List()
	countries.SetOnBack(a.backToDashboard)
	countries.SetOnCreate(func() { a.showCountryForm(0) })
	countries.SetOnEdit(func(c model.Country) { a.showCountryForm(c.ID) })

	tariffs := a.tariffs.List()
	tariffs.SetOnBack(a.backToDashboard)
	tariffs.SetOnCreate(func() { a.showTariffForm(nil) })
	tariffs.SetOnEdit(func(t model.Tariff) { a.showTariffForm(&t) })

	opcoTariffs := a.opcoTariffs.List()
	opcoTariffs.SetOnBack(a.backToDashboard)
	opcoTariffs.SetOnCreate(func() { a.showOpcoTariffForm(nil) })
	opcoTariffs.SetOnEdit(func(t model.OpcoTariff) { a.showOpcoTariffForm(&t) })
}

// showForm はフォームを中央に表示する。閉じるとbackの一覧に戻る。
func (a *Application) showForm(page string, form *tview.Form, height int) {
	a.app.AddPage(page, ui.Centered(form, 70, height), true, true)
	a.app.SetFocus(form)
}

func (a *Application) closeForm(page, back string, table *tview.Table, reload func()) {
	a.app.RemovePage(page)
	a.app.SwitchToPage(back)
	a.app.SetFocus(table)
	if reload != nil {
		reload()
	}
}

func (a *Application) showPartnerForm(id int64) {
	screen := partner.NewFormScreen(a.app, a.client, a.auditLogger, a.static, a.partners.Snapshot())
	screen.SetOnSave(func() { a.closeForm(pagePartnerForm, pagePartners, a.partners.GetTable(), a.partners.Reload) })
	screen.SetOnCancel(func() { a.closeForm(pagePartnerForm, pagePartners, a.partners.GetTable(), nil) })

	if id == 0 {
		screen.SetupCreate()
		a.showForm(pagePartnerForm, screen.GetForm(), 21)
		return
	}
	a.loadThen("Failed to load partner", func(ctx context.Context) error {
		return screen.SetupEdit(ctx, id)
	}, func() {
		a.showForm(pagePartnerForm, screen.GetForm(), 21)
	})
}

func (a *Application) showPartnerView(id int64) {
	screen := partner.NewViewScreen(a.client, a.partners.Snapshot())
	screen.SetOnBack(func() { a.closeForm(pagePartnerView, pagePartners, a.partners.GetTable(), nil) })

	a.loadThen("Failed to load partner", func(ctx context.Context) error {
		return screen.Load(ctx, id)
	}, func() {
		a.app.AddPage(pagePartnerView, ui.Centered(screen.GetView(), 60, 14), true, true)
		a.app.SetFocus(screen.GetView())
	})
}

func (a *Application) showCountryForm(id int64) {
	screen := country.NewFormScreen(a.app, a.client, a.auditLogger, a.static)
	screen.SetOnSave(func() { a.closeForm(pageCountryForm, pageCountries, a.countries.GetTable(), a.countries.Reload) })
	screen.SetOnCancel(func() { a.closeForm(pageCountryForm, pageCountries, a.countries.GetTable(), nil) })

	if id == 0 {
		screen.SetupCreate()
		a.showForm(pageCountryForm, screen.GetForm(), 9)
		return
	}
	a.loadThen("Failed to load country", func(ctx context.Context) error {
		return screen.SetupEdit(ctx, id)
	}, func() {
		a.showForm(pageCountryForm, screen.GetForm(), 9)
	})
}

func (a *Application) showTariffForm(t *model.Tariff) {
	screen := tariff.NewFormScreen(a.app, a.client, a.auditLogger)
	screen.SetOnSave(func() { a.closeForm(pageTariffForm, pageTariffs, a.tariffs.GetTable(), a.tariffs.Reload) })
	screen.SetOnCancel(func() { a.closeForm(pageTariffForm, pageTariffs, a.tariffs.GetTable(), nil) })

	a.loadThen("Failed to load partners", screen.Prepare, func() {
		if t == nil {
			screen.SetupCreate()
		} else {
			screen.SetupEdit(*t)
		}
		a.showForm(pageTariffForm, screen.GetForm(), 23)
	})
}

func (a *Application) showOpcoTariffForm(t *model.OpcoTariff) {
	screen := opcotariff.NewFormScreen(a.app, a.client, a.auditLogger, a.static)
	screen.SetOnSave(func() {
		a.closeForm(pageOpcoForm, pageOpcoTariffs, a.opcoTariffs.GetTable(), a.opcoTariffs.Reload)
	})
	screen.SetOnCancel(func() { a.closeForm(pageOpcoForm, pageOpcoTariffs, a.opcoTariffs.GetTable(), nil) })

	a.loadThen("Failed to load countries", screen.Prepare, func() {
		if t == nil {
			screen.SetupCreate()
		} else {
			screen.SetupEdit(*t)
		}
		a.showForm(pageOpcoForm, screen.GetForm(), 27)
	})
}

// loadThen はloadをバックグラウンドで実行し、成功時にUIスレッドでshowを呼び出す。
func (a *Application) loadThen(failure string, load func(ctx context.Context) error, show func()) {
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), config.LoadTimeout)
		defer cancel()
		err := load(ctx)

		a.app.QueueUpdateDraw(func() {
			if err != nil {
				a.app.GetStatusBar().ShowAPIError(failure, err)
				return
			}
			show()
		})
	}()
}

func (a *Application) showExport() {
	screen := export.NewScreen(a.app, exporter.New(a.client), a.auditLogger, ".")
	closeExport := func() {
		a.app.RemovePage(pageExport)
		a.backToDashboard()
	}
	screen.SetOnDone(closeExport)
	screen.SetOnCancel(closeExport)
	screen.Setup()

	a.showForm(pageExport, screen.GetForm(), 9)
}

// logout はセッションを破棄してログイン画面に戻る。
func (a *Application) logout() {
	if a.sessions == nil || !a.sessions.LoggedIn() {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), config.SaveTimeout)
	defer cancel()

	user := a.sessions.UserName()
	if err := a.sessions.End(ctx); err != nil {
		slog.Warn("session delete failed",
			logging.WithEventID("SESSION_DELETE_ERR"),
			logging.WithError(err),
		)
	}
	a.auditLogger.LogLogout()
	a.auditLogger.SetAdminUser("")
	slog.Info("logged out",
		logging.WithEventID("LOGOUT"),
		a.fields.WithUser(user),
	)

	a.app.RemovePage(pageDashboard)
	a.showLogin()
	a.app.GetStatusBar().ShowInfo("Signed out.")
}

func (a *Application) setupGlobalKeyBindings() {
	a.app.SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
		switch event.Key() {
		case ui.KeyQuit:
			a.quit()
			return nil
		case ui.KeyLogout:
			a.logout()
			return nil
		case ui.KeyHelp:
			a.showHelp()
			return nil
		}
		return event
	})
}

func (a *Application) showHelp() {
	if a.app.HasPage(pageHelp) {
		return
	}
	modal := ui.NewHelpModal(ui.DefaultHelpSections(), func() {
		a.app.RemovePage(pageHelp)
	})
	a.app.AddPage(pageHelp, modal, true, true)
}

func (a *Application) quit() {
	a.app.Stop()
}

func (a *Application) cleanup() {
	a.closeStore()
	slog.Info("admin-tui stopped", logging.WithEventID("APP_STOP"))
}
