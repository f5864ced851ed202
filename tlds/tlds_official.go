package tlds

// Official is a sorted list of public top-level domains (TLDs) and
// effective top-level domains (eTLDs): country-code second-level
// domains such as "co.uk" that are commonly used for websites. ASCII
// entries are listed first, followed by internationalized TLDs in
// their native (non-punycode) form, matching the ordering the
// extractor package relies on to split the two groups.
//
// This list is curated from official sources:
//   - https://data.iana.org/TLD/tlds-alpha-by-domain.txt
//   - https://publicsuffix.org/list/public_suffix_list.dat
var Official = []string{
	`ac`, `academy`, `accountant`, `accountants`, `active`, `actor`, `ad`,
	`ae`, `aero`, `af`, `ag`, `agency`, `ai`, `airforce`, `al`, `am`,
	`apartments`, `app`, `ar`, `archi`, `army`, `art`, `as`, `asia`, `at`,
	`attorney`, `au`, `auction`, `audio`, `auto`, `aw`, `ax`, `az`,
	`ba`, `band`, `bank`, `bar`, `bargains`, `bayern`, `bb`, `bd`, `be`,
	`beer`, `berlin`, `best`, `bet`, `bf`, `bg`, `bh`, `bi`, `bid`, `bike`,
	`bio`, `biz`, `bj`, `black`, `blackfriday`, `blog`, `blue`, `bm`, `bn`,
	`bo`, `boston`, `boutique`, `br`, `broker`, `build`, `builders`,
	`business`, `buzz`, `bw`, `by`, `bz`,
	`ca`, `cafe`, `camera`, `camp`, `capital`, `car`, `cards`, `care`,
	`careers`, `cars`, `casa`, `cash`, `casino`, `cat`, `catering`, `cc`,
	`center`, `ceo`, `cf`, `cg`, `ch`, `charity`, `chat`, `cheap`,
	`christmas`, `church`, `ci`, `city`, `ck`, `cl`, `claims`, `cleaning`,
	`click`, `clinic`, `clothing`, `cloud`, `club`, `cm`, `cn`, `co`,
	`co.uk`, `coach`, `codes`, `coffee`, `college`, `cologne`, `com`,
	`com.au`, `com.br`, `com.cn`, `community`, `company`, `computer`,
	`condos`, `construction`, `consulting`, `contractors`, `cooking`,
	`cool`, `coop`, `country`, `coupons`, `courses`, `cr`, `credit`,
	`creditcard`, `cricket`, `cruises`, `cu`, `cv`, `cw`, `cx`, `cy`, `cz`,
	`dance`, `date`, `dating`, `de`, `deals`, `degree`, `delivery`,
	`democrat`, `dental`, `dentist`, `design`, `dev`, `diamonds`, `diet`,
	`digital`, `direct`, `directory`, `discount`, `dj`, `dk`, `dm`,
	`do`, `docs`, `dog`, `domains`, `download`, `dz`,
	`ec`, `edu`, `education`, `ee`, `eg`, `email`, `energy`, `engineer`,
	`engineering`, `enterprises`, `equipment`, `es`, `estate`, `et`, `eu`,
	`events`, `exchange`, `expert`, `exposed`, `express`,
	`fail`, `faith`, `family`, `fans`, `farm`, `fashion`, `fi`, `film`,
	`finance`, `financial`, `fish`, `fishing`, `fit`, `fitness`, `fj`,
	`fk`, `flights`, `florist`, `flowers`, `fm`, `fo`, `football`,
	`forsale`, `foundation`, `fr`, `fun`, `fund`, `furniture`, `futbol`,
	`ga`, `gallery`, `games`, `garden`, `gb`, `gd`, `ge`, `gf`, `gg`,
	`gh`, `gi`, `gift`, `gifts`, `gl`, `glass`, `global`, `gm`, `gmbh`,
	`gn`, `gold`, `golf`, `gov`, `gp`, `gq`, `gr`, `graphics`, `gratis`,
	`green`, `gripe`, `group`, `gs`, `gt`, `gu`, `guide`, `guitars`,
	`guru`, `gw`, `gy`,
	`hair`, `hamburg`, `haus`, `healthcare`, `help`, `hk`, `hm`, `hn`,
	`hockey`, `holdings`, `holiday`, `homes`, `horse`, `hospital`, `host`,
	`hosting`, `house`, `how`, `hr`, `ht`, `hu`,
	`id`, `ie`, `il`, `im`, `immo`, `in`, `industries`, `info`, `ink`,
	`institute`, `insurance`, `international`, `investments`, `io`,
	`iq`, `ir`, `is`, `it`,
	`je`, `jetzt`, `jewelry`, `jm`, `jo`, `jobs`, `jp`,
	`ke`, `kg`, `kh`, `ki`, `kim`, `kitchen`, `kiwi`, `km`, `kn`,
	`kp`, `kr`, `kw`, `ky`, `kz`,
	`la`, `land`, `lat`, `lawyer`, `lb`, `lc`, `lease`, `legal`, `lgbt`,
	`li`, `life`, `lighting`, `limited`, `limo`, `link`, `live`, `lk`,
	`loan`, `loans`, `lol`, `london`, `lr`, `ls`, `lt`, `ltd`, `lu`,
	`luxury`, `lv`, `ly`,
	`ma`, `maison`, `management`, `market`, `marketing`, `mc`, `md`, `me`,
	`media`, `meet`, `menu`, `mg`, `mh`, `mil`, `mk`, `ml`, `mm`, `mn`,
	`mo`, `mobi`, `moda`, `moe`, `money`, `mortgage`, `moscow`, `motorcycles`,
	`mov`, `movie`, `mp`, `mq`, `mr`, `ms`, `mt`, `mu`, `museum`, `mv`,
	`mw`, `mx`, `my`, `mz`,
	`na`, `name`, `navy`, `nc`, `ne`, `net`, `network`, `news`, `nf`,
	`ng`, `ngo`, `ninja`, `nl`, `no`, `np`, `nr`, `nrw`, `nu`, `nyc`, `nz`,
	`om`, `one`, `onl`, `online`, `org`, `org.uk`,
	`page`, `paris`, `partners`, `parts`, `party`, `pe`, `pf`, `pg`, `ph`,
	`photo`, `photography`, `photos`, `pics`, `pictures`, `pink`, `pizza`,
	`pk`, `pl`, `plumbing`, `plus`, `pm`, `pn`, `poker`, `press`, `pro`,
	`productions`, `promo`, `properties`, `property`, `protection`, `pt`,
	`pub`, `pw`, `py`,
	`qa`, `qpon`, `quebec`,
	`racing`, `re`, `realtor`, `realty`, `recipes`, `red`, `rehab`,
	`reise`, `reisen`, `rent`, `rentals`, `repair`, `report`, `republican`,
	`rest`, `review`, `reviews`, `rip`, `ro`, `rocks`, `rodeo`, `rs`, `ru`,
	`run`, `rw`,
	`sa`, `sale`, `salon`, `sb`, `sc`, `school`, `science`, `scot`, `sd`,
	`se`, `security`, `services`, `sg`, `sh`, `shoes`, `shop`, `shopping`,
	`show`, `si`, `singles`, `site`, `sj`, `sk`, `sl`, `sm`, `sn`,
	`so`, `soccer`, `social`, `software`, `solar`, `solutions`, `soy`,
	`space`, `sr`, `st`, `store`, `stream`, `studio`, `study`, `style`,
	`su`, `supplies`, `supply`, `support`, `surf`, `surgery`, `sv`, `sx`,
	`sy`, `systems`, `sz`,
	`tattoo`, `tax`, `taxi`, `tc`, `td`, `team`, `tech`, `technology`,
	`tel`, `tennis`, `tf`, `tg`, `th`, `theater`, `tips`, `tires`, `tj`,
	`tk`, `tl`, `tm`, `tn`, `to`, `today`, `tokyo`, `tools`, `top`,
	`tours`, `town`, `toys`, `tr`, `trade`, `training`, `travel`, `tt`,
	`tv`, `tw`, `tz`,
	`ua`, `ug`, `uk`, `university`, `uno`, `us`, `uy`, `uz`,
	`va`, `vacations`, `vc`, `ve`, `vegas`, `ventures`, `vet`, `vg`, `vi`,
	`viajes`, `video`, `villas`, `vin`, `vip`, `vision`, `vn`, `vodka`,
	`vote`, `voting`, `voto`, `voyage`, `vu`,
	`wang`, `watch`, `webcam`, `website`, `wedding`, `wf`, `wien`, `wiki`,
	`win`, `wine`, `work`, `works`, `world`, `ws`,
	`xxx`, `xyz`,
	`ye`, `yoga`, `yt`,
	`za`, `zm`, `zone`, `zw`,
	`рф`,
	`中国`,
	`香港`,
	`테스트`,
}
