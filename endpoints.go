package nsgifts

// Vendor endpoint paths. The NS.Gifts API accepts every call as HTTP POST.
const (
	basePath      = "/api/v1"
	productsPath  = basePath + "/products"
	steamPath     = basePath + "/steam"
	steamGiftPath = basePath + "/steam_gift"
	whitelistPath = basePath + "/ip-whitelist"

	epLogin        = basePath + "/get_token"
	epSignup       = basePath + "/signup"
	epCheckBalance = basePath + "/check_balance"
	epUserInfo     = basePath + "/user"

	epAllServices        = productsPath + "/get_all_services"
	epCategories         = productsPath + "/get_categories"
	epServicesByCategory = productsPath + "/get_services"

	epCreateOrder = basePath + "/create_order"
	epPayOrder    = basePath + "/pay_order"
	epOrderInfo   = basePath + "/order_info"

	epSteamAmount       = steamPath + "/get_amount"
	epSteamCurrencyRate = steamPath + "/get_currency_rate"
	epGiftCalculate     = steamGiftPath + "/calculate"
	epGiftCreateOrder   = steamGiftPath + "/create_order"
	epGiftPayOrder      = steamGiftPath + "/pay_order"
	epGiftApps          = steamGiftPath + "/get_apps"

	epWhitelistAdd    = whitelistPath + "/add"
	epWhitelistRemove = whitelistPath + "/remove"
	epWhitelistList   = whitelistPath + "/list"
)
