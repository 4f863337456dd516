package wits

// symbolTable holds the WITS Level 0 symbol definitions, keyed by 4-character
// code. Entries cover every record type with its standard channels; codes and
// record types are derived from the keys at init (symbol.go).
var symbolTable = map[string]Symbol{
	// Record 01 - General Time-Based
	"0101": sym("WELLID", "Well Identifier", TypeString, UNITLESS, UNITLESS),
	"0102": sym("SKNO", "Sidetrack/Hole Sect No.", TypeString, UNITLESS, UNITLESS),
	"0103": sym("RECID", "Record Identifier", TypeInt, UNITLESS, UNITLESS),
	"0104": sym("SEQID", "Sequence Identifier", TypeInt, UNITLESS, UNITLESS),
	"0105": sym("DATE", "Date (YYMMDD)", TypeInt, UNITLESS, UNITLESS),
	"0106": sym("TIME", "Time (HHMMSS)", TypeInt, UNITLESS, UNITLESS),
	"0107": sym("ACTC", "Activity Code", TypeInt, UNITLESS, UNITLESS),
	"0108": sym("DBTM", "Depth Bit (measured)", TypeFloat, METERS, FEET),
	"0109": sym("DBTV", "Depth Bit (vertical)", TypeFloat, METERS, FEET),
	"0110": sym("DMEA", "Depth Hole (measured)", TypeFloat, METERS, FEET),
	"0111": sym("DVER", "Depth Hole (vertical)", TypeFloat, METERS, FEET),
	"0112": sym("BPOS", "Block Position", TypeFloat, METERS, FEET),
	"0113": sym("ROPA", "Rate of Penetration (avg)", TypeFloat, MHR, FHR),
	"0114": sym("HKLA", "Hookload (avg)", TypeFloat, KDN, KLB),
	"0115": sym("HKLX", "Hookload (max)", TypeFloat, KDN, KLB),
	"0116": sym("WOBA", "Weight on Bit (surface, avg)", TypeFloat, KDN, KLB),
	"0117": sym("WOBX", "Weight on Bit (surface, max)", TypeFloat, KDN, KLB),
	"0118": sym("TQA", "Rotary Torque (avg)", TypeFloat, KNM, KFLB),
	"0119": sym("TQX", "Rotary Torque (max)", TypeFloat, KNM, KFLB),
	"0120": sym("RPMA", "Rotary Speed (avg, rpm)", TypeFloat, UNITLESS, UNITLESS),
	"0121": sym("RPMX", "Rotary Speed (max, rpm)", TypeFloat, UNITLESS, UNITLESS),
	"0122": sym("SPPA", "Standpipe Pressure (avg)", TypeFloat, KPA, PSI),
	"0123": sym("CHKP", "Casing (Choke) Pressure", TypeFloat, KPA, PSI),
	"0124": sym("SPM1", "Pump Stroke Rate #1 (spm)", TypeFloat, UNITLESS, UNITLESS),
	"0125": sym("SPM2", "Pump Stroke Rate #2 (spm)", TypeFloat, UNITLESS, UNITLESS),
	"0126": sym("SPM3", "Pump Stroke Rate #3 (spm)", TypeFloat, UNITLESS, UNITLESS),
	"0127": sym("TVA", "Tank Volume (active)", TypeFloat, M3, BBL),
	"0128": sym("TVCA", "Tank Volume Change (active)", TypeFloat, M3, BBL),
	"0129": sym("MFOA", "Mud Flow Out (actual)", TypeFloat, LPM, GPM),
	"0130": sym("MFIA", "Mud Flow In (actual)", TypeFloat, LPM, GPM),
	"0131": sym("MDOA", "Mud Density Out (actual)", TypeFloat, KGM3, PPG),
	"0132": sym("MDIA", "Mud Density In (actual)", TypeFloat, KGM3, PPG),
	"0133": sym("MTOA", "Mud Temperature Out (actual)", TypeFloat, DEGC, DEGF),
	"0134": sym("MTIA", "Mud Temperature In (actual)", TypeFloat, DEGC, DEGF),
	"0135": sym("MCOA", "Mud Conductivity Out (actual)", TypeFloat, UNITLESS, UNITLESS),
	"0136": sym("MCIA", "Mud Conductivity In (actual)", TypeFloat, UNITLESS, UNITLESS),
	"0137": sym("STKC", "Pump Strokes (cum)", TypeInt, UNITLESS, UNITLESS),
	"0138": sym("LAGS", "Lag Strokes", TypeInt, UNITLESS, UNITLESS),
	"0139": sym("DEPR", "Depth Returns (lagged)", TypeFloat, METERS, FEET),
	"0140": sym("GASA", "Gas (avg, %)", TypeFloat, UNITLESS, UNITLESS),
	"0141": sym("MFOP", "Mud Flow Out (%)", TypeFloat, UNITLESS, UNITLESS),

	// Record 02 - Drilling - Depth-Based
	"0201": sym("WELLID", "Well Identifier", TypeString, UNITLESS, UNITLESS),
	"0202": sym("SKNO", "Sidetrack/Hole Sect No.", TypeString, UNITLESS, UNITLESS),
	"0203": sym("RECID", "Record Identifier", TypeInt, UNITLESS, UNITLESS),
	"0204": sym("SEQID", "Sequence Identifier", TypeInt, UNITLESS, UNITLESS),
	"0205": sym("DATE", "Date (YYMMDD)", TypeInt, UNITLESS, UNITLESS),
	"0206": sym("TIME", "Time (HHMMSS)", TypeInt, UNITLESS, UNITLESS),
	"0207": sym("ACTC", "Activity Code", TypeInt, UNITLESS, UNITLESS),
	"0208": sym("DBTM", "Depth Bit (measured)", TypeFloat, METERS, FEET),
	"0209": sym("DBTV", "Depth Bit (vertical)", TypeFloat, METERS, FEET),
	"0210": sym("ROP", "Rate of Penetration", TypeFloat, MHR, FHR),
	"0211": sym("WOB", "Weight on Bit", TypeFloat, KDN, KLB),
	"0212": sym("TQ", "Rotary Torque", TypeFloat, KNM, KFLB),
	"0213": sym("RPM", "Rotary Speed (rpm)", TypeFloat, UNITLESS, UNITLESS),
	"0214": sym("SPP", "Standpipe Pressure", TypeFloat, KPA, PSI),
	"0215": sym("MFI", "Mud Flow In", TypeFloat, LPM, GPM),
	"0216": sym("MDI", "Mud Density In", TypeFloat, KGM3, PPG),
	"0217": sym("GAS", "Gas (avg, %)", TypeFloat, UNITLESS, UNITLESS),
	"0218": sym("GASX", "Gas (max, %)", TypeFloat, UNITLESS, UNITLESS),
	"0219": sym("MTO", "Mud Temperature Out", TypeFloat, DEGC, DEGF),
	"0220": sym("DXC", "Drilling Exponent (corrected)", TypeFloat, UNITLESS, UNITLESS),

	// Record 03 - Drilling - Connections
	"0305": sym("DATE", "Date (YYMMDD)", TypeInt, UNITLESS, UNITLESS),
	"0306": sym("TIME", "Time (HHMMSS)", TypeInt, UNITLESS, UNITLESS),
	"0308": sym("DBTM", "Depth Bit (measured)", TypeFloat, METERS, FEET),
	"0309": sym("CNCT", "Connection Time (min)", TypeFloat, UNITLESS, UNITLESS),
	"0310": sym("SLPT", "Slip to Slip Time (min)", TypeFloat, UNITLESS, UNITLESS),
	"0311": sym("CIRT", "Circulating Time (min)", TypeFloat, UNITLESS, UNITLESS),
	"0312": sym("HKLB", "Hookload Before Connection", TypeFloat, KDN, KLB),
	"0313": sym("HKLC", "Hookload After Connection", TypeFloat, KDN, KLB),

	// Record 04 - Hydraulics
	"0405": sym("DATE", "Date (YYMMDD)", TypeInt, UNITLESS, UNITLESS),
	"0406": sym("TIME", "Time (HHMMSS)", TypeInt, UNITLESS, UNITLESS),
	"0408": sym("DBTM", "Depth Bit (measured)", TypeFloat, METERS, FEET),
	"0410": sym("PBIT", "Pressure Loss (bit)", TypeFloat, KPA, PSI),
	"0411": sym("HPB", "Hydraulic Power (bit)", TypeFloat, UNITLESS, UNITLESS),
	"0412": sym("JETV", "Jet Velocity (m/s, ft/s)", TypeFloat, UNITLESS, UNITLESS),
	"0413": sym("ECDB", "Equivalent Circulating Density (bit)", TypeFloat, KGM3, PPG),
	"0414": sym("ANNV", "Annular Velocity (shoe)", TypeFloat, UNITLESS, UNITLESS),
	"0415": sym("PCAS", "Pressure Loss (casing)", TypeFloat, KPA, PSI),

	// Record 05 - Tripping - Time-Based
	"0505": sym("DATE", "Date (YYMMDD)", TypeInt, UNITLESS, UNITLESS),
	"0506": sym("TIME", "Time (HHMMSS)", TypeInt, UNITLESS, UNITLESS),
	"0508": sym("DBTM", "Depth Bit (measured)", TypeFloat, METERS, FEET),
	"0509": sym("BPOS", "Block Position", TypeFloat, METERS, FEET),
	"0510": sym("HKLA", "Hookload (avg)", TypeFloat, KDN, KLB),
	"0511": sym("TRIR", "Trip Rate (avg)", TypeFloat, MHR, FHR),
	"0512": sym("STND", "Stands Run (cum)", TypeInt, UNITLESS, UNITLESS),
	"0513": sym("TTVA", "Trip Tank Volume (actual)", TypeFloat, M3, BBL),
	"0514": sym("TTVC", "Trip Tank Volume Change", TypeFloat, M3, BBL),
	"0515": sym("FILL", "Fill Volume (cum)", TypeFloat, M3, BBL),

	// Record 06 - Tripping - Connections
	"0605": sym("DATE", "Date (YYMMDD)", TypeInt, UNITLESS, UNITLESS),
	"0606": sym("TIME", "Time (HHMMSS)", TypeInt, UNITLESS, UNITLESS),
	"0608": sym("DBTM", "Depth Bit (measured)", TypeFloat, METERS, FEET),
	"0609": sym("STDN", "Stand Number", TypeInt, UNITLESS, UNITLESS),
	"0610": sym("STDT", "Stand Duration (min)", TypeFloat, UNITLESS, UNITLESS),
	"0611": sym("HKLD", "Hookload (stand avg)", TypeFloat, KDN, KLB),
	"0612": sym("TTVA", "Trip Tank Volume (actual)", TypeFloat, M3, BBL),
	"0613": sym("FILC", "Fill Volume (calculated)", TypeFloat, M3, BBL),
	"0614": sym("FILA", "Fill Volume (actual)", TypeFloat, M3, BBL),

	// Record 07 - Survey / Directional
	"0701": sym("WELLID", "Well Identifier", TypeString, UNITLESS, UNITLESS),
	"0705": sym("DATE", "Date (YYMMDD)", TypeInt, UNITLESS, UNITLESS),
	"0706": sym("TIME", "Time (HHMMSS)", TypeInt, UNITLESS, UNITLESS),
	"0708": sym("DSVM", "Depth Survey (measured)", TypeFloat, METERS, FEET),
	"0709": sym("DSVV", "Depth Survey (vertical)", TypeFloat, METERS, FEET),
	"0710": sym("SVYI", "Survey Inclination (deg)", TypeFloat, UNITLESS, UNITLESS),
	"0711": sym("SVYA", "Survey Azimuth (deg)", TypeFloat, UNITLESS, UNITLESS),
	"0712": sym("MTF", "Magnetic Toolface (deg)", TypeFloat, UNITLESS, UNITLESS),
	"0713": sym("GTF", "Gravity Toolface (deg)", TypeFloat, UNITLESS, UNITLESS),
	"0714": sym("NSOF", "North-South Offset", TypeFloat, METERS, FEET),
	"0715": sym("EWOF", "East-West Offset", TypeFloat, METERS, FEET),
	"0716": sym("DLS", "Dogleg Severity (deg/30m, deg/100ft)", TypeFloat, UNITLESS, UNITLESS),
	"0717": sym("VSEC", "Vertical Section", TypeFloat, METERS, FEET),

	// Record 08 - MWD Formation Evaluation
	"0805": sym("DATE", "Date (YYMMDD)", TypeInt, UNITLESS, UNITLESS),
	"0806": sym("TIME", "Time (HHMMSS)", TypeInt, UNITLESS, UNITLESS),
	"0808": sym("DMEA", "Depth Hole (measured)", TypeFloat, METERS, FEET),
	"0810": sym("GRM", "Gamma Ray (MWD, api)", TypeFloat, UNITLESS, UNITLESS),
	"0811": sym("RESM", "Resistivity (MWD, ohm.m)", TypeFloat, UNITLESS, UNITLESS),
	"0812": sym("PORM", "Porosity (MWD, %)", TypeFloat, UNITLESS, UNITLESS),
	"0813": sym("DENM", "Formation Density (MWD, g/cc)", TypeFloat, UNITLESS, UNITLESS),
	"0814": sym("TEMM", "Annular Temperature (MWD)", TypeFloat, DEGC, DEGF),
	"0815": sym("APRS", "Annular Pressure (MWD)", TypeFloat, KPA, PSI),
	"0816": sym("CALM", "Caliper (MWD)", TypeFloat, MILLIMETERS, INCHES),

	// Record 09 - MWD Mechanical
	"0905": sym("DATE", "Date (YYMMDD)", TypeInt, UNITLESS, UNITLESS),
	"0906": sym("TIME", "Time (HHMMSS)", TypeInt, UNITLESS, UNITLESS),
	"0908": sym("DBTM", "Depth Bit (measured)", TypeFloat, METERS, FEET),
	"0910": sym("WOBD", "Weight on Bit (downhole)", TypeFloat, KDN, KLB),
	"0911": sym("TQD", "Torque (downhole)", TypeFloat, KNM, KFLB),
	"0912": sym("RPMD", "Rotary Speed (downhole, rpm)", TypeFloat, UNITLESS, UNITLESS),
	"0913": sym("SHKL", "Shock Level (cum)", TypeInt, UNITLESS, UNITLESS),
	"0914": sym("STSL", "Stick-Slip Index", TypeFloat, UNITLESS, UNITLESS),
	"0915": sym("TRPM", "Turbine Speed (rpm)", TypeFloat, UNITLESS, UNITLESS),
	"0916": sym("VIBL", "Vibration (lateral, g)", TypeFloat, UNITLESS, UNITLESS),

	// Record 10 - Evaluation - Pressure
	"1005": sym("DATE", "Date (YYMMDD)", TypeInt, UNITLESS, UNITLESS),
	"1006": sym("TIME", "Time (HHMMSS)", TypeInt, UNITLESS, UNITLESS),
	"1008": sym("DMEA", "Depth Hole (measured)", TypeFloat, METERS, FEET),
	"1010": sym("PPFG", "Pore Pressure Gradient (est)", TypeFloat, KGM3, PPG),
	"1011": sym("FRAC", "Fracture Gradient (est)", TypeFloat, KGM3, PPG),
	"1012": sym("OBG", "Overburden Gradient", TypeFloat, KGM3, PPG),
	"1013": sym("KTOL", "Kick Tolerance", TypeFloat, KGM3, PPG),
	"1014": sym("DXC", "Drilling Exponent (corrected)", TypeFloat, UNITLESS, UNITLESS),

	// Record 11 - Mud Tank Volumes
	"1105": sym("DATE", "Date (YYMMDD)", TypeInt, UNITLESS, UNITLESS),
	"1106": sym("TIME", "Time (HHMMSS)", TypeInt, UNITLESS, UNITLESS),
	"1108": sym("DMEA", "Depth Hole (measured)", TypeFloat, METERS, FEET),
	"1110": sym("TV01", "Tank Volume #1", TypeFloat, M3, BBL),
	"1111": sym("TV02", "Tank Volume #2", TypeFloat, M3, BBL),
	"1112": sym("TV03", "Tank Volume #3", TypeFloat, M3, BBL),
	"1113": sym("TV04", "Tank Volume #4", TypeFloat, M3, BBL),
	"1114": sym("TV05", "Tank Volume #5", TypeFloat, M3, BBL),
	"1115": sym("TV06", "Tank Volume #6", TypeFloat, M3, BBL),
	"1116": sym("TV07", "Tank Volume #7", TypeFloat, M3, BBL),
	"1117": sym("TV08", "Tank Volume #8", TypeFloat, M3, BBL),
	"1118": sym("TVT", "Tank Volume (total)", TypeFloat, M3, BBL),
	"1119": sym("TVA", "Tank Volume (active)", TypeFloat, M3, BBL),
	"1120": sym("TVCA", "Tank Volume Change (active)", TypeFloat, M3, BBL),

	// Record 12 - Chromatograph Cycle-Based
	"1205": sym("DATE", "Date (YYMMDD)", TypeInt, UNITLESS, UNITLESS),
	"1206": sym("TIME", "Time (HHMMSS)", TypeInt, UNITLESS, UNITLESS),
	"1208": sym("DMEA", "Depth Returns (lagged)", TypeFloat, METERS, FEET),
	"1210": sym("C1", "Methane (ppm)", TypeFloat, UNITLESS, UNITLESS),
	"1211": sym("C2", "Ethane (ppm)", TypeFloat, UNITLESS, UNITLESS),
	"1212": sym("C3", "Propane (ppm)", TypeFloat, UNITLESS, UNITLESS),
	"1213": sym("IC4", "Iso-Butane (ppm)", TypeFloat, UNITLESS, UNITLESS),
	"1214": sym("NC4", "Nor-Butane (ppm)", TypeFloat, UNITLESS, UNITLESS),
	"1215": sym("IC5", "Iso-Pentane (ppm)", TypeFloat, UNITLESS, UNITLESS),
	"1216": sym("NC5", "Nor-Pentane (ppm)", TypeFloat, UNITLESS, UNITLESS),
	"1217": sym("TGAS", "Total Gas (%)", TypeFloat, UNITLESS, UNITLESS),
	"1218": sym("H2S", "Hydrogen Sulphide (ppm)", TypeFloat, UNITLESS, UNITLESS),
	"1219": sym("CO2", "Carbon Dioxide (ppm)", TypeFloat, UNITLESS, UNITLESS),

	// Record 13 - Chromatograph Depth-Based
	"1305": sym("DATE", "Date (YYMMDD)", TypeInt, UNITLESS, UNITLESS),
	"1306": sym("TIME", "Time (HHMMSS)", TypeInt, UNITLESS, UNITLESS),
	"1308": sym("DMEA", "Depth Returns (lagged)", TypeFloat, METERS, FEET),
	"1310": sym("C1", "Methane (ppm)", TypeFloat, UNITLESS, UNITLESS),
	"1311": sym("C2", "Ethane (ppm)", TypeFloat, UNITLESS, UNITLESS),
	"1312": sym("C3", "Propane (ppm)", TypeFloat, UNITLESS, UNITLESS),
	"1313": sym("TGAS", "Total Gas (%)", TypeFloat, UNITLESS, UNITLESS),

	// Record 14 - Lagged Mud Properties
	"1405": sym("DATE", "Date (YYMMDD)", TypeInt, UNITLESS, UNITLESS),
	"1406": sym("TIME", "Time (HHMMSS)", TypeInt, UNITLESS, UNITLESS),
	"1408": sym("DEPR", "Depth Returns (lagged)", TypeFloat, METERS, FEET),
	"1410": sym("MDL", "Mud Density (lagged)", TypeFloat, KGM3, PPG),
	"1411": sym("MTL", "Mud Temperature (lagged)", TypeFloat, DEGC, DEGF),
	"1412": sym("MCL", "Mud Conductivity (lagged)", TypeFloat, UNITLESS, UNITLESS),
	"1413": sym("MRL", "Mud Resistivity (lagged, ohm.m)", TypeFloat, UNITLESS, UNITLESS),
	"1414": sym("PHL", "Mud pH (lagged)", TypeFloat, UNITLESS, UNITLESS),

	// Record 15 - Cuttings / Lithology
	"1505": sym("DATE", "Date (YYMMDD)", TypeInt, UNITLESS, UNITLESS),
	"1506": sym("TIME", "Time (HHMMSS)", TypeInt, UNITLESS, UNITLESS),
	"1508": sym("DMEA", "Depth Returns (lagged)", TypeFloat, METERS, FEET),
	"1510": sym("LITH", "Lithology (primary)", TypeString, UNITLESS, UNITLESS),
	"1511": sym("LPCT", "Lithology Percent", TypeFloat, UNITLESS, UNITLESS),
	"1512": sym("SHDN", "Shale Density (g/cc)", TypeFloat, UNITLESS, UNITLESS),
	"1513": sym("CALC", "Calcimetry (%)", TypeFloat, UNITLESS, UNITLESS),

	// Record 16 - Hydrocarbon Show
	"1605": sym("DATE", "Date (YYMMDD)", TypeInt, UNITLESS, UNITLESS),
	"1606": sym("TIME", "Time (HHMMSS)", TypeInt, UNITLESS, UNITLESS),
	"1608": sym("DMEA", "Depth Sample (measured)", TypeFloat, METERS, FEET),
	"1610": sym("SHOW", "Show Rating (0-5)", TypeInt, UNITLESS, UNITLESS),
	"1611": sym("FLOR", "Fluorescence (%)", TypeFloat, UNITLESS, UNITLESS),
	"1612": sym("CUTD", "Cut Description", TypeString, UNITLESS, UNITLESS),
	"1613": sym("STNC", "Stain Color", TypeString, UNITLESS, UNITLESS),

	// Record 17 - Cementing
	"1705": sym("DATE", "Date (YYMMDD)", TypeInt, UNITLESS, UNITLESS),
	"1706": sym("TIME", "Time (HHMMSS)", TypeInt, UNITLESS, UNITLESS),
	"1708": sym("DBTM", "Depth Shoe (measured)", TypeFloat, METERS, FEET),
	"1710": sym("CMFR", "Slurry Flow Rate", TypeFloat, LPM, GPM),
	"1711": sym("CMDN", "Slurry Density", TypeFloat, KGM3, PPG),
	"1712": sym("CMPR", "Cementing Pressure", TypeFloat, KPA, PSI),
	"1713": sym("CMVT", "Slurry Volume (cum)", TypeFloat, M3, BBL),
	"1714": sym("CMST", "Cement Stage Number", TypeInt, UNITLESS, UNITLESS),

	// Record 18 - Drill Stem Testing
	"1805": sym("DATE", "Date (YYMMDD)", TypeInt, UNITLESS, UNITLESS),
	"1806": sym("TIME", "Time (HHMMSS)", TypeInt, UNITLESS, UNITLESS),
	"1808": sym("DMEA", "Depth Test (measured)", TypeFloat, METERS, FEET),
	"1810": sym("DSTN", "Test Number", TypeInt, UNITLESS, UNITLESS),
	"1811": sym("FPRS", "Flowing Pressure", TypeFloat, KPA, PSI),
	"1812": sym("SPRS", "Shut-in Pressure", TypeFloat, KPA, PSI),
	"1813": sym("HPRS", "Hydrostatic Pressure", TypeFloat, KPA, PSI),
	"1814": sym("DSTT", "Test Elapsed Time (min)", TypeFloat, UNITLESS, UNITLESS),

	// Record 19 - Configuration
	"1905": sym("DATE", "Date (YYMMDD)", TypeInt, UNITLESS, UNITLESS),
	"1906": sym("TIME", "Time (HHMMSS)", TypeInt, UNITLESS, UNITLESS),
	"1910": sym("RIGN", "Rig Name", TypeString, UNITLESS, UNITLESS),
	"1911": sym("CSGD", "Casing Depth (measured)", TypeFloat, METERS, FEET),
	"1912": sym("CSGI", "Casing Inner Diameter", TypeFloat, MILLIMETERS, INCHES),
	"1913": sym("BITD", "Bit Diameter", TypeFloat, MILLIMETERS, INCHES),
	"1914": sym("DPOD", "Drill Pipe Outer Diameter", TypeFloat, MILLIMETERS, INCHES),
	"1915": sym("PDS1", "Pump #1 Displacement (per stroke)", TypeFloat, M3, BBL),
	"1916": sym("WDEP", "Water Depth", TypeFloat, METERS, FEET),

	// Record 20 - Mud Report
	"2005": sym("DATE", "Date (YYMMDD)", TypeInt, UNITLESS, UNITLESS),
	"2006": sym("TIME", "Time (HHMMSS)", TypeInt, UNITLESS, UNITLESS),
	"2010": sym("MDEN", "Mud Density (report)", TypeFloat, KGM3, PPG),
	"2011": sym("FVIS", "Funnel Viscosity (s)", TypeFloat, UNITLESS, UNITLESS),
	"2012": sym("PV", "Plastic Viscosity (cP)", TypeFloat, UNITLESS, UNITLESS),
	"2013": sym("YP", "Yield Point (Pa, lb/100ft2)", TypeFloat, UNITLESS, UNITLESS),
	"2014": sym("GEL1", "Gel Strength (10 s)", TypeFloat, UNITLESS, UNITLESS),
	"2015": sym("GEL2", "Gel Strength (10 min)", TypeFloat, UNITLESS, UNITLESS),
	"2016": sym("FLWL", "Fluid Loss (API)", TypeFloat, UNITLESS, UNITLESS),
	"2017": sym("SOLP", "Solids (%)", TypeFloat, UNITLESS, UNITLESS),
	"2018": sym("PH", "Mud pH", TypeFloat, UNITLESS, UNITLESS),
	"2019": sym("CLC", "Chlorides (mg/L)", TypeFloat, UNITLESS, UNITLESS),

	// Record 21 - Bit Report
	"2105": sym("DATE", "Date (YYMMDD)", TypeInt, UNITLESS, UNITLESS),
	"2106": sym("TIME", "Time (HHMMSS)", TypeInt, UNITLESS, UNITLESS),
	"2110": sym("BITN", "Bit Number", TypeString, UNITLESS, UNITLESS),
	"2111": sym("BITD", "Bit Diameter", TypeFloat, MILLIMETERS, INCHES),
	"2112": sym("BMFR", "Bit Manufacturer", TypeString, UNITLESS, UNITLESS),
	"2113": sym("BTYP", "Bit Type", TypeString, UNITLESS, UNITLESS),
	"2114": sym("TFA", "Total Flow Area (in2)", TypeFloat, UNITLESS, UNITLESS),
	"2115": sym("BHRS", "Bit Hours (cum)", TypeFloat, UNITLESS, UNITLESS),
	"2116": sym("BDIN", "Depth In", TypeFloat, METERS, FEET),
	"2117": sym("BDOU", "Depth Out", TypeFloat, METERS, FEET),
	"2118": sym("IADC", "IADC Dull Grade", TypeString, UNITLESS, UNITLESS),

	// Record 22 - Remarks
	"2205": sym("DATE", "Date (YYMMDD)", TypeInt, UNITLESS, UNITLESS),
	"2206": sym("TIME", "Time (HHMMSS)", TypeInt, UNITLESS, UNITLESS),
	"2208": sym("DMEA", "Depth Hole (measured)", TypeFloat, METERS, FEET),
	"2210": sym("RMK1", "Remark Line 1", TypeString, UNITLESS, UNITLESS),
	"2211": sym("RMK2", "Remark Line 2", TypeString, UNITLESS, UNITLESS),

	// Record 23 - Well Testing
	"2305": sym("DATE", "Date (YYMMDD)", TypeInt, UNITLESS, UNITLESS),
	"2306": sym("TIME", "Time (HHMMSS)", TypeInt, UNITLESS, UNITLESS),
	"2310": sym("TSTN", "Test Number", TypeInt, UNITLESS, UNITLESS),
	"2311": sym("CHSZ", "Choke Size", TypeFloat, MILLIMETERS, INCHES),
	"2312": sym("WHP", "Wellhead Pressure", TypeFloat, KPA, PSI),
	"2313": sym("OILV", "Oil Volume (cum)", TypeFloat, M3, BBL),
	"2314": sym("GASV", "Gas Volume (cum, m3, mcf)", TypeFloat, UNITLESS, UNITLESS),
	"2315": sym("WTRV", "Water Volume (cum)", TypeFloat, M3, BBL),
	"2316": sym("FTMP", "Flowing Temperature", TypeFloat, DEGC, DEGF),

	// Record 24 - Vessel Motion / Mooring Status
	"2405": sym("DATE", "Date (YYMMDD)", TypeInt, UNITLESS, UNITLESS),
	"2406": sym("TIME", "Time (HHMMSS)", TypeInt, UNITLESS, UNITLESS),
	"2410": sym("HEAV", "Heave", TypeFloat, METERS, FEET),
	"2411": sym("PTCH", "Pitch (deg)", TypeFloat, UNITLESS, UNITLESS),
	"2412": sym("ROLL", "Roll (deg)", TypeFloat, UNITLESS, UNITLESS),
	"2413": sym("RIST", "Riser Tension", TypeFloat, KDN, KLB),
	"2414": sym("VPOS", "Vessel Position Offset", TypeFloat, METERS, FEET),

	// Record 25 - Weather / Sea State
	"2505": sym("DATE", "Date (YYMMDD)", TypeInt, UNITLESS, UNITLESS),
	"2506": sym("TIME", "Time (HHMMSS)", TypeInt, UNITLESS, UNITLESS),
	"2510": sym("WSPD", "Wind Speed (m/s, knots)", TypeFloat, UNITLESS, UNITLESS),
	"2511": sym("WDIR", "Wind Direction (deg)", TypeFloat, UNITLESS, UNITLESS),
	"2512": sym("WVHT", "Wave Height", TypeFloat, METERS, FEET),
	"2513": sym("WVPD", "Wave Period (s)", TypeFloat, UNITLESS, UNITLESS),
	"2514": sym("ATMP", "Air Temperature", TypeFloat, DEGC, DEGF),
	"2515": sym("BARP", "Barometric Pressure", TypeFloat, KPA, PSI),
	"2516": sym("STMP", "Sea Temperature", TypeFloat, DEGC, DEGF),
	"2517": sym("CSPD", "Current Speed (m/s, knots)", TypeFloat, UNITLESS, UNITLESS),
	"2518": sym("VIS", "Visibility (km, mi)", TypeFloat, UNITLESS, UNITLESS),
}
